package domain

// Theme is one of the six fixed life domains a focus session is logged
// against. Themes carry presentation metadata only; every number shown next
// to a theme is derived from the event log.
type Theme string

const (
	ThemeCoreAbility Theme = "core-ability"
	ThemeInnovation  Theme = "innovation"
	ThemeExploration Theme = "exploration"
	ThemeWellbeing   Theme = "wellbeing"
	ThemeSocial      Theme = "social"
	ThemeAesthetics  Theme = "aesthetics"
)

type ThemeInfo struct {
	Key         Theme
	Icon        string
	Description string
}

// Themes is the fixed catalog, in display order.
var Themes = []ThemeInfo{
	{Key: ThemeCoreAbility, Icon: "🧠", Description: "profession / algorithms"},
	{Key: ThemeInnovation, Icon: "🛠", Description: "projects / code"},
	{Key: ThemeExploration, Icon: "🔭", Description: "reading / new ground"},
	{Key: ThemeWellbeing, Icon: "🦌", Description: "exercise / sleep"},
	{Key: ThemeSocial, Icon: "❄️", Description: "people / speaking"},
	{Key: ThemeAesthetics, Icon: "🎨", Description: "art / design"},
}

func ValidTheme(t Theme) bool {
	for _, info := range Themes {
		if info.Key == t {
			return true
		}
	}
	return false
}

// Stage tags where in the input-process-output loop a session sat.
type Stage string

const (
	StageInput   Stage = "Input"
	StageProcess Stage = "Process"
	StageOutput  Stage = "Output"
)

func ValidStage(s Stage) bool {
	return s == StageInput || s == StageProcess || s == StageOutput
}
