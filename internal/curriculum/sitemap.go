package curriculum

// SitemapItem describes one sidebar destination.
type SitemapItem struct {
	Path        string
	Name        string
	Description string
}

// Sitemap returns every view's metadata in display order. The lesson entry
// exists for completeness; sidebars reach it through the curriculum list,
// not directly.
func Sitemap() []SitemapItem {
	return []SitemapItem{
		{Path: "home", Name: "Home", Description: "Course overview and quick links"},
		{Path: "introduction", Name: "Foreword", Description: "Why this course exists and how to use it"},
		{Path: "curriculum", Name: "Lessons", Description: "All weekly lessons"},
		{Path: "lesson", Name: "Lesson", Description: "The currently open weekly lesson"},
		{Path: "quiz", Name: "Question Bank", Description: "Pooled quiz across every week"},
		{Path: "tutor", Name: "AI Tutor", Description: "Ask the study-buddy AI anything"},
	}
}
