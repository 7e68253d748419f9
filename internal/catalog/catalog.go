package catalog

import (
	"math/rand"

	"github.com/rmartin/promptsynth/internal/domain"
)

// Category groups templates for the sidebar.
type Category struct {
	Name      string
	Emoji     string
	Templates []domain.Template
}

// Categories is the static catalog, in presentation order. Read-only.
var Categories = []Category{
	{
		Name:  "Work",
		Emoji: "💼",
		Templates: []domain.Template{
			{
				Name:       "Email Draft",
				Goal:       "Write a professional email about [topic]",
				Tone:       "Professional",
				OutputType: "Text",
				Audience:   "Colleagues or business partners",
			},
			{
				Name:       "Meeting Summary",
				Goal:       "Summarize the key points from a meeting about [topic]",
				Tone:       "Clear and helpful",
				OutputType: "Bullet List",
				Audience:   "Team members",
			},
		},
	},
	{
		Name:  "Creative",
		Emoji: "🎨",
		Templates: []domain.Template{
			{
				Name:       "Story Idea",
				Goal:       "Generate a creative story idea about [theme]",
				Tone:       "Creative",
				OutputType: "Text",
				Audience:   "Writers",
			},
			{
				Name:       "Blog Post",
				Goal:       "Write a blog post about [topic]",
				Tone:       "Professional",
				OutputType: "Markdown",
				Audience:   "General readers",
			},
		},
	},
	{
		Name:  "Technical",
		Emoji: "💻",
		Templates: []domain.Template{
			{
				Name:       "Code Explanation",
				Goal:       "Explain how [code/algorithm] works",
				Tone:       "Clear and helpful",
				OutputType: "Text",
				Audience:   "Developers",
			},
			{
				Name:       "Documentation",
				Goal:       "Create documentation for [project/feature]",
				Tone:       "Professional",
				OutputType: "Markdown",
				Audience:   "Technical users",
			},
		},
	},
	{
		Name:  "Personal",
		Emoji: "💭",
		Templates: []domain.Template{
			{
				Name:       "Journal Prompt",
				Goal:       "Create a reflective journal prompt about [topic]",
				Tone:       "Reflective",
				OutputType: "Text",
				Audience:   "Personal use",
			},
			{
				Name:       "Congratulations Message",
				Goal:       "Write a congratulatory message for [occasion]",
				Tone:       "Motivational",
				OutputType: "Text",
				Audience:   "Friends or family",
			},
		},
	},
	{
		Name:  "Social Media",
		Emoji: "📱",
		Templates: []domain.Template{
			{
				Name:       "Tweet Thread",
				Goal:       "Create a thread of tweets about [topic]",
				Tone:       "Casual",
				OutputType: "Conversation",
				Audience:   "Twitter followers",
			},
			{
				Name:       "LinkedIn Post",
				Goal:       "Write a professional LinkedIn post about [topic]",
				Tone:       "Professional",
				OutputType: "Text",
				Audience:   "Professional network",
			},
		},
	},
}

// CategoryEmojis covers every category the UI may render, including ones
// with no templates yet.
var CategoryEmojis = map[string]string{
	"Work": "💼", "Creative": "🎨", "Technical": "💻", "Personal": "💭",
	"Educational": "📚", "Social Media": "📱", "Fun": "🎮",
}

// Flatten returns name→template and name→category maps. Callers must treat
// both as read-only.
func Flatten() (map[string]domain.Template, map[string]string) {
	templates := make(map[string]domain.Template)
	categories := make(map[string]string)
	for _, cat := range Categories {
		for _, tpl := range cat.Templates {
			tpl.Category = cat.Name
			templates[tpl.Name] = tpl
			categories[tpl.Name] = cat.Name
		}
	}
	return templates, categories
}

// Get looks a template up by name. Unknown names report ok=false, never an
// error; the core does not care how the name was chosen.
func Get(name string) (domain.Template, bool) {
	for _, cat := range Categories {
		for _, tpl := range cat.Templates {
			if tpl.Name == name {
				tpl.Category = cat.Name
				return tpl, true
			}
		}
	}
	return domain.Template{}, false
}

// Names returns every template name in catalog order.
func Names() []string {
	var names []string
	for _, cat := range Categories {
		for _, tpl := range cat.Templates {
			names = append(names, tpl.Name)
		}
	}
	return names
}

// Random picks a template uniformly, for the "Surprise Me!" action.
func Random() domain.Template {
	names := Names()
	tpl, _ := Get(names[rand.Intn(len(names))])
	return tpl
}
