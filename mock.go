package summarizer

import "time"

// Mock payloads, served when no session exists, while offline, or when the
// backend is unreachable and the caller is better off with sample data than
// an error. They are never written to the cache, so real responses replace
// them on the first successful fetch.

func mockUserSummaries(savedOnly bool) []UserSummary {
	all := []UserSummary{
		{
			ID:             "1",
			Title:          "The Rise of Sustainable Technology in Urban Development",
			SummaryContent: "Sustainable technology is transforming urban development through smart grids, renewable energy integration, and IoT-enabled infrastructure...",
			KeyPoints: []string{
				"Smart grids reduce energy consumption by 30%",
				"IoT sensors optimize resource allocation in real-time",
				"Green building materials reduce carbon footprint",
			},
			OriginalWordCount: 1850,
			SummaryWordCount:  185,
			CompressionRatio:  90,
			Saved:             true,
			CreatedAt:         time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:             "2",
			Title:          "Advancements in Personalized Medicine: 2025 Update",
			SummaryContent: "Personalized medicine continues to advance with genomic sequencing becoming more affordable and AI-driven diagnostic tools improving accuracy...",
			KeyPoints: []string{
				"Genomic sequencing costs dropped 40% in the past year",
				"AI diagnostics show 95% accuracy in early disease detection",
				"Targeted therapies reduce side effects by 60%",
			},
			OriginalWordCount: 2200,
			SummaryWordCount:  220,
			CompressionRatio:  90,
			Saved:             false,
			CreatedAt:         time.Date(2025, 7, 14, 15, 45, 0, 0, time.UTC),
		},
		{
			ID:             "3",
			Title:          "The Future of Work: AI Collaboration Models",
			SummaryContent: "AI collaboration models are reshaping workplace dynamics...",
			KeyPoints: []string{
				"Human-AI teams show 35% higher productivity",
				"Adaptive interfaces personalize workflow for each user",
				"Ethical guidelines becoming standard in AI deployment",
			},
			OriginalWordCount: 1650,
			SummaryWordCount:  165,
			CompressionRatio:  90,
			Saved:             true,
			CreatedAt:         time.Date(2025, 7, 10, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:             "4",
			Title:          "Renewable Energy Breakthroughs of 2025",
			SummaryContent: "Renewable energy technologies have seen significant advancements...",
			KeyPoints: []string{
				"New solar panel designs achieve 32% efficiency",
				"Grid-scale battery storage costs reduced by 45%",
				"Offshore wind farms now viable in deeper waters",
			},
			OriginalWordCount: 1950,
			SummaryWordCount:  195,
			CompressionRatio:  90,
			Saved:             false,
			CreatedAt:         time.Date(2025, 7, 8, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:             "5",
			Title:          "Cybersecurity Trends for Enterprise Systems",
			SummaryContent: "Enterprise cybersecurity is evolving rapidly to counter sophisticated threats...",
			KeyPoints: []string{
				"Zero-trust architecture adoption increased by 65%",
				"AI-powered threat detection reduces response time by 80%",
				"Supply chain security becoming top priority for CISOs",
			},
			OriginalWordCount: 2100,
			SummaryWordCount:  210,
			CompressionRatio:  90,
			Saved:             false,
			CreatedAt:         time.Date(2025, 7, 5, 11, 10, 0, 0, time.UTC),
		},
	}

	if !savedOnly {
		return all
	}
	saved := all[:0:0]
	for _, s := range all {
		if s.Saved {
			saved = append(saved, s)
		}
	}
	return saved
}

func mockSummariesResponse(saved *bool) UserSummariesResponse {
	list := mockUserSummaries(saved != nil && *saved)
	return UserSummariesResponse{
		Summaries:   list,
		TotalPages:  1,
		CurrentPage: 0,
		TotalCount:  len(list),
	}
}

// mockUserSummary returns the sample summary matching id, or the first sample
// when id is unknown.
func mockUserSummary(id string) UserSummary {
	all := mockUserSummaries(false)
	for _, s := range all {
		if s.ID == id {
			return s
		}
	}
	return all[0]
}

func mockUserStats() UserStats {
	return UserStats{
		TotalSummaries: 42,
		WordsSaved:     126000,
		TimeSaved:      630,
	}
}

func mockShowcaseResponse() ShowcaseResponse {
	return ShowcaseResponse{
		Summaries: []ShowcaseSummary{
			{
				ID:      "1",
				Title:   "The Impact of Climate Change on Global Agriculture",
				Snippet: "Climate change is affecting agricultural productivity worldwide through rising temperatures, changing precipitation patterns, and extreme weather events...",
				KeyPoints: []string{
					"Global crop yields could decrease by up to 30% by 2050",
					"Adaptation strategies include drought-resistant crops and precision farming",
					"Small-scale farmers in developing countries face the greatest risks",
				},
				Stats:      ShowcaseStats{OriginalWords: 2450, SummaryWords: 245, CompressionRatio: 90},
				Category:   "Environment",
				Popularity: 95,
			},
			{
				ID:      "2",
				Title:   "Advancements in Quantum Computing: A 2025 Perspective",
				Snippet: "Quantum computing has made significant strides in the past year, with several breakthroughs in qubit stability and quantum error correction...",
				KeyPoints: []string{
					"IBM and Google achieved quantum advantage in new problem domains",
					"Error correction improvements have increased quantum circuit depth",
					"Financial and pharmaceutical industries lead in quantum application development",
				},
				Stats:      ShowcaseStats{OriginalWords: 3200, SummaryWords: 320, CompressionRatio: 90},
				Category:   "Technology",
				Popularity: 92,
			},
			{
				ID:      "3",
				Title:   "The Evolution of Remote Work: Post-Pandemic Trends",
				Snippet: "Remote work has evolved from a pandemic necessity to a permanent fixture in the global workplace, with companies adopting hybrid models...",
				KeyPoints: []string{
					"70% of companies now offer permanent hybrid work options",
					"Productivity metrics show improvements in remote work settings",
					"Office spaces are being redesigned for collaboration rather than daily work",
				},
				Stats:      ShowcaseStats{OriginalWords: 1800, SummaryWords: 180, CompressionRatio: 90},
				Category:   "Business",
				Popularity: 88,
			},
		},
		TotalPages:  1,
		CurrentPage: 0,
	}
}
