package palette

import "github.com/dixieflatline76/Tone/pkg/season"

// Curated styling dataset. Sourced from color-consultation references;
// edits here must keep every hex parseable and every best_range inside
// its gradient (NewProvider enforces both).
var palettes = map[season.Season]Palette{
	season.Winter: {
		Swatch: []string{
			"#000000", // True Black
			"#FFFFFF", // Pure White
			"#C6062F", // True Red
			"#123087", // Royal Blue
			"#066B44", // Emerald Green
			"#8B008B", // Magenta
			"#2F4F4F", // Dark Slate Gray
			"#FF1493", // Deep Pink
		},
		Neutrals: []ColorItem{
			{Name: "True Black", Hex: "#000000"},
			{Name: "Pure White", Hex: "#FFFFFF"},
			{Name: "Charcoal", Hex: "#36454F"},
			{Name: "Navy", Hex: "#000080"},
		},
		Accents: []ColorItem{
			{Name: "True Red", Hex: "#C6062F"},
			{Name: "Royal Blue", Hex: "#4169E1"},
			{Name: "Emerald", Hex: "#50C878"},
			{Name: "Magenta", Hex: "#FF0090"},
			{Name: "Deep Purple", Hex: "#673AB7"},
			{Name: "Icy Pink", Hex: "#F8BBD9"},
		},
		Avoid: []ColorItem{
			{Name: "Orange", Hex: "#FF8C00"},
			{Name: "Mustard", Hex: "#FFDB58"},
			{Name: "Olive", Hex: "#808000"},
			{Name: "Cream", Hex: "#FFFDD0"},
			{Name: "Rust", Hex: "#B7410E"},
			{Name: "Warm Brown", Hex: "#8B4513"},
		},
		Pairs: []Pair{
			{Do: ColorItem{Name: "True Red", Hex: "#C6062F"}, Dont: ColorItem{Name: "Tomato Red", Hex: "#FF6347"}},
			{Do: ColorItem{Name: "Icy Pink", Hex: "#F8BBD9"}, Dont: ColorItem{Name: "Peach", Hex: "#FFCBA4"}},
			{Do: ColorItem{Name: "Pure White", Hex: "#FFFFFF"}, Dont: ColorItem{Name: "Cream", Hex: "#FFFDD0"}},
			{Do: ColorItem{Name: "Royal Blue", Hex: "#4169E1"}, Dont: ColorItem{Name: "Teal", Hex: "#008080"}},
			{Do: ColorItem{Name: "Emerald", Hex: "#50C878"}, Dont: ColorItem{Name: "Olive", Hex: "#808000"}},
			{Do: ColorItem{Name: "True Black", Hex: "#000000"}, Dont: ColorItem{Name: "Brown", Hex: "#8B4513"}},
		},
		Gradients: []Gradient{
			{
				Family:      "Reds & Pinks",
				Description: "Deep, blue-based reds and cool pinks",
				Gradient:    []string{"#FFF0F5", "#FFE4E1", "#FFB6C1", "#FF69B4", "#FF1493", "#DC143C", "#C6062F", "#B22222", "#8B0000", "#4A0000"},
				BestRange:   []int{4, 8},
			},
			{
				Family:      "Blues",
				Description: "True blues from royal to navy",
				Gradient:    []string{"#F0F8FF", "#E6F3FF", "#B0E0E6", "#87CEEB", "#4169E1", "#0000CD", "#0000AA", "#000080", "#00005F", "#000040"},
				BestRange:   []int{4, 8},
			},
			{
				Family:      "Greens",
				Description: "Emerald and jewel greens",
				Gradient:    []string{"#F0FFF0", "#C8F7C8", "#98FB98", "#50C878", "#3CB371", "#228B22", "#1E7B1E", "#006400", "#004D00", "#003300"},
				BestRange:   []int{3, 7},
			},
			{
				Family:      "Purples",
				Description: "Deep, vivid purples and magentas",
				Gradient:    []string{"#F8F4FF", "#E6E6FA", "#DDA0DD", "#DA70D6", "#9932CC", "#8B008B", "#673AB7", "#4B0082", "#380062", "#2A004D"},
				BestRange:   []int{4, 8},
			},
			{
				Family:      "Neutrals",
				Description: "Pure white, charcoal, and true black",
				Gradient:    []string{"#FFFFFF", "#F5F5F5", "#E0E0E0", "#BDBDBD", "#9E9E9E", "#757575", "#616161", "#424242", "#212121", "#000000"},
				BestRange:   []int{0, 1, 7, 9}, // white end and black end; midtone grays wash Winter out
			},
		},
		Description: Description{
			Summary:         "Cool and Deep - High contrast with cool undertones",
			Characteristics: "Your skin has blue or pink undertones with a deeper, more intense coloring. You have high contrast between your hair, eyes, and skin.",
			BestColors:      "True, vibrant colors with blue undertones. Black, pure white, jewel tones.",
			Avoid:           "Warm, muted colors like orange, gold, and earth tones.",
			Metals:          "Silver, platinum, white gold",
			Tips:            "Wear bold, clear colors close to your face. High contrast looks suit you best.",
		},
	},
	season.Summer: {
		Swatch: []string{
			"#728CA6", // Soft Blue
			"#99A2C1", // Periwinkle
			"#CDA5B4", // Dusty Rose
			"#F4F4F4", // Soft White
			"#B2B2B2", // Soft Gray
			"#8B9D83", // Sage Green
			"#D8BFD8", // Lavender
			"#B0C4DE", // Light Steel Blue
		},
		Neutrals: []ColorItem{
			{Name: "Soft White", Hex: "#F5F5F5"},
			{Name: "Dove Gray", Hex: "#708090"},
			{Name: "Cocoa", Hex: "#8B7D7B"},
			{Name: "Soft Navy", Hex: "#3D4F6F"},
		},
		Accents: []ColorItem{
			{Name: "Dusty Rose", Hex: "#C9A9A6"},
			{Name: "Lavender", Hex: "#B57EDC"},
			{Name: "Powder Blue", Hex: "#B0E0E6"},
			{Name: "Sage Green", Hex: "#9CAF88"},
			{Name: "Mauve", Hex: "#E0B0FF"},
			{Name: "Periwinkle", Hex: "#8E82FE"},
		},
		Avoid: []ColorItem{
			{Name: "Bright Orange", Hex: "#FF4500"},
			{Name: "True Black", Hex: "#000000"},
			{Name: "Pure White", Hex: "#FFFFFF"},
			{Name: "Bright Yellow", Hex: "#FFFF00"},
			{Name: "Kelly Green", Hex: "#4CBB17"},
			{Name: "Hot Pink", Hex: "#FF1493"},
		},
		Pairs: []Pair{
			{Do: ColorItem{Name: "Dusty Rose", Hex: "#C9A9A6"}, Dont: ColorItem{Name: "Coral", Hex: "#FF7F50"}},
			{Do: ColorItem{Name: "Powder Blue", Hex: "#B0E0E6"}, Dont: ColorItem{Name: "Bright Blue", Hex: "#0096FF"}},
			{Do: ColorItem{Name: "Soft White", Hex: "#F5F5F5"}, Dont: ColorItem{Name: "Stark White", Hex: "#FFFFFF"}},
			{Do: ColorItem{Name: "Lavender", Hex: "#B57EDC"}, Dont: ColorItem{Name: "Bright Purple", Hex: "#8B00FF"}},
			{Do: ColorItem{Name: "Sage Green", Hex: "#9CAF88"}, Dont: ColorItem{Name: "Kelly Green", Hex: "#4CBB17"}},
			{Do: ColorItem{Name: "Dove Gray", Hex: "#708090"}, Dont: ColorItem{Name: "True Black", Hex: "#000000"}},
		},
		Gradients: []Gradient{
			{
				Family:      "Pinks & Roses",
				Description: "Soft, dusty pinks and muted roses",
				Gradient:    []string{"#FFF0F5", "#FFE4EC", "#FFD1DC", "#F4C2C2", "#DDA0A0", "#C9A9A6", "#B89B9B", "#A08080", "#8B7070", "#705858"},
				BestRange:   []int{1, 6},
			},
			{
				Family:      "Blues",
				Description: "Soft, muted blues and powder blues",
				Gradient:    []string{"#F0F8FF", "#E8F4F8", "#D6EAF8", "#B0E0E6", "#A8D8EA", "#87CEEB", "#6BB3D9", "#5B9BD5", "#4A88C5", "#3D4F6F"},
				BestRange:   []int{1, 7},
			},
			{
				Family:      "Greens",
				Description: "Sage, seafoam and muted greens",
				Gradient:    []string{"#F0FFF0", "#E8F5E8", "#D4E8D4", "#C1D9C1", "#A8CCA8", "#9CAF88", "#8DA07A", "#6B8E6B", "#5A7A5A", "#4A6741"},
				BestRange:   []int{2, 7},
			},
			{
				Family:      "Purples & Lavenders",
				Description: "Soft lavenders and dusty purples",
				Gradient:    []string{"#FAF5FF", "#F3E8FF", "#E8D5F0", "#E0B0FF", "#D4A5E8", "#B57EDC", "#A76BC8", "#9370DB", "#8060C8", "#7B68A0"},
				BestRange:   []int{1, 7},
			},
			{
				Family:      "Neutrals",
				Description: "Soft white to dove gray (avoid stark white/black)",
				Gradient:    []string{"#FAFAFA", "#F5F5F5", "#EEEEEE", "#E0E0E0", "#C0C0C0", "#A0A0A0", "#808080", "#708090", "#606060", "#4A4A4A"},
				BestRange:   []int{1, 7},
			},
		},
		Description: Description{
			Summary:         "Cool and Light - Soft contrast with cool undertones",
			Characteristics: "Your skin has blue or pink undertones with lighter, softer coloring. You have low to medium contrast.",
			BestColors:      "Soft, muted colors with blue undertones. Pastels, dusty shades, soft neutrals.",
			Avoid:           "Warm colors like orange and gold. Bright, harsh colors.",
			Metals:          "Silver, rose gold, pewter",
			Tips:            "Soft, blended colors work best. Tone-on-tone and monochromatic looks are flattering.",
		},
	},
	season.Autumn: {
		Swatch: []string{
			"#6E4C3D", // Coffee Brown
			"#D17B0F", // Burnt Orange
			"#4F591E", // Olive Green
			"#A82618", // Rust Red
			"#E6CCA0", // Warm Beige
			"#8B4513", // Saddle Brown
			"#CD853F", // Peru (Tan)
			"#556B2F", // Dark Olive Green
		},
		Neutrals: []ColorItem{
			{Name: "Cream", Hex: "#FFFDD0"},
			{Name: "Camel", Hex: "#C19A6B"},
			{Name: "Chocolate", Hex: "#7B3F00"},
			{Name: "Olive", Hex: "#556B2F"},
		},
		Accents: []ColorItem{
			{Name: "Burnt Orange", Hex: "#CC5500"},
			{Name: "Rust", Hex: "#B7410E"},
			{Name: "Mustard", Hex: "#FFDB58"},
			{Name: "Terracotta", Hex: "#E2725B"},
			{Name: "Teal", Hex: "#008080"},
			{Name: "Forest Green", Hex: "#228B22"},
		},
		Avoid: []ColorItem{
			{Name: "Icy Blue", Hex: "#A5F2F3"},
			{Name: "Pure White", Hex: "#FFFFFF"},
			{Name: "True Black", Hex: "#000000"},
			{Name: "Fuchsia", Hex: "#FF00FF"},
			{Name: "Lavender", Hex: "#E6E6FA"},
			{Name: "Cool Pink", Hex: "#FFB6C1"},
		},
		Pairs: []Pair{
			{Do: ColorItem{Name: "Burnt Orange", Hex: "#CC5500"}, Dont: ColorItem{Name: "Bright Orange", Hex: "#FF4500"}},
			{Do: ColorItem{Name: "Cream", Hex: "#FFFDD0"}, Dont: ColorItem{Name: "Pure White", Hex: "#FFFFFF"}},
			{Do: ColorItem{Name: "Teal", Hex: "#008080"}, Dont: ColorItem{Name: "Icy Blue", Hex: "#A5F2F3"}},
			{Do: ColorItem{Name: "Rust", Hex: "#B7410E"}, Dont: ColorItem{Name: "True Red", Hex: "#C6062F"}},
			{Do: ColorItem{Name: "Olive", Hex: "#556B2F"}, Dont: ColorItem{Name: "Emerald", Hex: "#50C878"}},
			{Do: ColorItem{Name: "Chocolate", Hex: "#7B3F00"}, Dont: ColorItem{Name: "Black", Hex: "#000000"}},
		},
		Gradients: []Gradient{
			{
				Family:      "Reds & Rusts",
				Description: "Warm rusty reds, terracotta, and brick",
				Gradient:    []string{"#FFEEDD", "#FFDAB9", "#F4A460", "#E2725B", "#CD5C5C", "#C04000", "#B7410E", "#A52A2A", "#8B0000", "#5C0000"},
				BestRange:   []int{2, 8},
			},
			{
				Family:      "Oranges & Golds",
				Description: "Warm golds, mustard, and burnt orange",
				Gradient:    []string{"#FFF8DC", "#FFEFD5", "#FFD700", "#FFC000", "#E6A800", "#CC8400", "#B8860B", "#996600", "#8B4513", "#6B3000"},
				BestRange:   []int{1, 8},
			},
			{
				Family:      "Greens",
				Description: "Olive, moss, and forest greens",
				Gradient:    []string{"#F5F5DC", "#E8E4C9", "#C5C35E", "#9ACD32", "#7CB342", "#6B8E23", "#5D7D1E", "#556B2F", "#4A5F29", "#3D4B2F"},
				BestRange:   []int{3, 8},
			},
			{
				Family:      "Teals",
				Description: "Warm teals and deep aqua (avoid icy)",
				Gradient:    []string{"#E0FFFF", "#B2DFDB", "#80CBC4", "#4DB6AC", "#26A69A", "#009688", "#00897B", "#00796B", "#006666", "#004D4D"},
				BestRange:   []int{3, 8},
			},
			{
				Family:      "Browns",
				Description: "Camel, tan, chocolate, and espresso",
				Gradient:    []string{"#FFF8DC", "#F5DEB3", "#DEB887", "#D2B48C", "#C19A6B", "#A0826D", "#8B7355", "#7B5B3A", "#5D4037", "#3E2723"},
				BestRange:   []int{2, 9},
			},
		},
		Description: Description{
			Summary:         "Warm and Deep - Rich, warm undertones with depth",
			Characteristics: "Your skin has golden, peachy, or yellow undertones with deeper coloring. You may have warm-toned hair and eyes.",
			BestColors:      "Rich, warm earth tones. Browns, oranges, warm greens, gold.",
			Avoid:           "Cool colors like icy blue, pure black, and bright white.",
			Metals:          "Gold, copper, bronze, brass",
			Tips:            "Layer warm, rich colors. Earthy, natural combinations work beautifully.",
		},
	},
	season.Spring: {
		Swatch: []string{
			"#FF7F50", // Coral
			"#FADA5E", // Warm Yellow
			"#40E0D0", // Turquoise
			"#FA8072", // Salmon
			"#F5F5DC", // Warm Cream
			"#98FB98", // Pale Green
			"#FFB6C1", // Light Pink
			"#FFA500", // Orange
		},
		Neutrals: []ColorItem{
			{Name: "Warm White", Hex: "#FAF9F6"},
			{Name: "Camel", Hex: "#C19A6B"},
			{Name: "Warm Gray", Hex: "#8B8589"},
			{Name: "Light Navy", Hex: "#3B5998"},
		},
		Accents: []ColorItem{
			{Name: "Coral", Hex: "#FF7F50"},
			{Name: "Peach", Hex: "#FFCBA4"},
			{Name: "Turquoise", Hex: "#40E0D0"},
			{Name: "Bright Yellow", Hex: "#FFD700"},
			{Name: "Warm Pink", Hex: "#FF69B4"},
			{Name: "Apple Green", Hex: "#8DB600"},
		},
		Avoid: []ColorItem{
			{Name: "True Black", Hex: "#000000"},
			{Name: "Navy", Hex: "#000080"},
			{Name: "Burgundy", Hex: "#800020"},
			{Name: "Dark Brown", Hex: "#3D2314"},
			{Name: "Dusty Rose", Hex: "#C9A9A6"},
			{Name: "Charcoal", Hex: "#36454F"},
		},
		Pairs: []Pair{
			{Do: ColorItem{Name: "Coral", Hex: "#FF7F50"}, Dont: ColorItem{Name: "Burgundy", Hex: "#800020"}},
			{Do: ColorItem{Name: "Warm White", Hex: "#FAF9F6"}, Dont: ColorItem{Name: "Pure White", Hex: "#FFFFFF"}},
			{Do: ColorItem{Name: "Turquoise", Hex: "#40E0D0"}, Dont: ColorItem{Name: "Navy", Hex: "#000080"}},
			{Do: ColorItem{Name: "Peach", Hex: "#FFCBA4"}, Dont: ColorItem{Name: "Dusty Rose", Hex: "#C9A9A6"}},
			{Do: ColorItem{Name: "Apple Green", Hex: "#8DB600"}, Dont: ColorItem{Name: "Forest Green", Hex: "#228B22"}},
			{Do: ColorItem{Name: "Bright Yellow", Hex: "#FFD700"}, Dont: ColorItem{Name: "Mustard", Hex: "#FFDB58"}},
		},
		Gradients: []Gradient{
			{
				Family:      "Corals & Peaches",
				Description: "Warm corals, peaches, and salmon",
				Gradient:    []string{"#FFF5EE", "#FFECE0", "#FFE4D0", "#FFCBA4", "#FFB088", "#FF9070", "#FF7F50", "#FF6B45", "#FF6347", "#E55B3C"},
				BestRange:   []int{2, 7},
			},
			{
				Family:      "Yellows",
				Description: "Warm sunny yellows and golden tones",
				Gradient:    []string{"#FFFEF0", "#FFFACD", "#FFF68F", "#FFEC4A", "#FFE135", "#FFD700", "#FFC125", "#FFB90F", "#FFA500", "#FF8C00"},
				BestRange:   []int{1, 8},
			},
			{
				Family:      "Greens",
				Description: "Bright, clear greens and apple green",
				Gradient:    []string{"#F0FFF0", "#E0FFE0", "#C0FFC0", "#98FB98", "#80E080", "#66CD00", "#5DBB63", "#50C850", "#32CD32", "#228B22"},
				BestRange:   []int{2, 7},
			},
			{
				Family:      "Aquas & Turquoise",
				Description: "Clear aqua and warm turquoise",
				Gradient:    []string{"#F0FFFF", "#E0FFFF", "#AFEEEE", "#7FFFD4", "#66CDAA", "#40E0D0", "#20C2B0", "#00CED1", "#00B5B8", "#00A3A3"},
				BestRange:   []int{2, 7},
			},
			{
				Family:      "Warm Pinks",
				Description: "Warm pinks (avoid cool/blue-based)",
				Gradient:    []string{"#FFF0F5", "#FFEBEE", "#FFD6E0", "#FFB6C1", "#FFA0B0", "#FF8DA1", "#FF69B4", "#FF5588", "#FF4081", "#F50057"},
				BestRange:   []int{2, 6},
			},
		},
		Description: Description{
			Summary:         "Warm and Light - Bright, warm undertones with clarity",
			Characteristics: "Your skin has golden, peachy undertones with lighter coloring. You have a fresh, warm appearance.",
			BestColors:      "Clear, warm colors. Coral, peach, warm yellow, turquoise, warm pastels.",
			Avoid:           "Cool, dark colors like black, navy, and cool grays.",
			Metals:          "Gold, rose gold, yellow gold",
			Tips:            "Bright, clear colors enhance your natural warmth. Avoid heavy, dark shades.",
		},
	},
}
