package catalog

import "math/rand"

// Tips rotate in the sidebar; one is pinned per session as the tip of the day.
var Tips = []string{
	"Keep prompts specific, not vague.",
	"Include sample inputs/outputs.",
	"Ask the AI to adopt a role.",
	"Use bullet points for structure.",
	"Mention tone and audience.",
	"Avoid multi-tasking prompts.",
	"Review and refine after first run!",
	"Set clear goals or desired outcomes.",
	"Reference format or style when helpful.",
	"Chain steps when possible.",
	"Include 'Do' and 'Don't' examples.",
	"Request reasoning when clarity matters.",
	"Use follow-ups to test prompt strength.",
}

// SignOffs rotate in the footer.
var SignOffs = []string{
	"Built by Ryan Martin. If it breaks, it's your fault.",
	"Another lovingly overengineered tool by Ryan Martin.",
	"You're now tech support. - RM",
	"Ryan Martin made this. Don't encourage him.",
}

// RandomTip picks a tip uniformly.
func RandomTip() string {
	return Tips[rand.Intn(len(Tips))]
}

// RandomSignOff picks a footer sign-off uniformly.
func RandomSignOff() string {
	return SignOffs[rand.Intn(len(SignOffs))]
}
