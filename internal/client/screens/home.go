package screens

const welcomeText = "Welcome! You are logged in."

// HomeScreen is shown after a successful login.
type HomeScreen struct{}

func NewHomeScreen() *HomeScreen {
	return &HomeScreen{}
}

func (h *HomeScreen) Region(id Region) (string, bool) {
	if id == RegionHomeText {
		return welcomeText, true
	}
	return "", false
}
