package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/screens"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/validation"
)

var (
	colorText    = lipgloss.Color("#cdd6f4")
	colorSubtext = lipgloss.Color("#7f849c")
	colorRed     = lipgloss.Color("#f38ba8")
	colorPeach   = lipgloss.Color("#fab387")
	colorGreen   = lipgloss.Color("#a6e3a1")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	labelStyle  = lipgloss.NewStyle().Foreground(colorSubtext)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	commonStyle = lipgloss.NewStyle().Foreground(colorPeach)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
)

// regionOrder is the display order of form regions.
var regionOrder = []screens.Region{
	screens.RegionErrorUsername,
	screens.RegionErrorEmail,
	screens.RegionErrorMobile,
	screens.RegionErrorPassword,
	screens.RegionCommonError,
}

type formView interface {
	Inputs() []screens.Input
	Value(f validation.Field) string
	Regions() map[screens.Region]string
}

func regionLine(id screens.Region, text string) string {
	style := errorStyle
	if id == screens.RegionCommonError {
		style = commonStyle
	}
	return labelStyle.Render("["+string(id)+"]") + " " + style.Render(text)
}

// renderForm prints the screen title, the fields with their current values
// (secret fields masked) and every shown region tagged with its identifier.
func renderForm(w io.Writer, title string, v formView) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	for _, in := range v.Inputs() {
		val := v.Value(in.Field)
		if in.Secret && val != "" {
			val = strings.Repeat("*", len(val))
		}
		b.WriteString("  " + labelStyle.Render(in.Placeholder+":") + " " + val + "\n")
	}

	regions := v.Regions()
	for _, id := range regionOrder {
		if text, ok := regions[id]; ok {
			b.WriteString(regionLine(id, text) + "\n")
		}
	}
	fmt.Fprint(w, b.String())
}

func renderHome(w io.Writer, h *screens.HomeScreen) {
	text, _ := h.Region(screens.RegionHomeText)
	fmt.Fprintln(w, titleStyle.Render("Home"))
	fmt.Fprintln(w, labelStyle.Render("["+string(screens.RegionHomeText)+"]")+" "+okStyle.Render(text))
}

func renderGallery(w io.Writer, s services.GalleryState) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Gallery, page %d", s.Page)) + " " + labelStyle.Render(string(s.Status)) + "\n")

	switch {
	case s.Status == models.FetchLoading && len(s.Photos) == 0:
		b.WriteString(labelStyle.Render("Loading...") + "\n")
	case s.Status == models.FetchFail:
		b.WriteString(errorStyle.Render("Error: "+s.Error) + "\n")
	}

	for i, p := range s.Photos {
		b.WriteString(fmt.Sprintf("  %3d. %s %s %s\n",
			i+1,
			p.Author,
			labelStyle.Render(fmt.Sprintf("(%dx%d)", p.Width, p.Height)),
			p.DownloadURL))
	}

	switch {
	case s.Downloading:
		b.WriteString(commonStyle.Render("Downloading...") + "\n")
	case s.DownloadedURI != "":
		b.WriteString(okStyle.Render("Downloaded: "+s.DownloadedURI) + "\n")
	default:
		b.WriteString(labelStyle.Render("No image downloaded yet") + "\n")
	}
	fmt.Fprint(w, b.String())
}
