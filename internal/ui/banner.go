package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
██████╗ ███████╗██╗   ██╗███████╗ █████╗ ██╗      █████╗ ██████╗ ██╗   ██╗
██╔══██╗██╔════╝██║   ██║██╔════╝██╔══██╗██║     ██╔══██╗██╔══██╗╚██╗ ██╔╝
██║  ██║█████╗  ██║   ██║███████╗███████║██║     ███████║██████╔╝ ╚████╔╝
██║  ██║██╔══╝  ╚██╗ ██╔╝╚════██║██╔══██║██║     ██╔══██║██╔══██╗  ╚██╔╝
██████╔╝███████╗ ╚████╔╝ ███████║██║  ██║███████╗██║  ██║██║  ██║   ██║
╚═════╝ ╚══════╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝
 hh.ru + superjob.ru salary stats
`

// ColorizeText applies a random gradient to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	steps := float32(len(chars))

	var b strings.Builder
	for i, ch := range chars {
		b.WriteString(startColor.Fade(0, steps, float32(i), endColor).Sprint(ch))
	}
	return b.String()
}

// PrintBanner writes the banner to w unless silenced
func PrintBanner(w io.Writer, silence bool) {
	if silence {
		return
	}
	fmt.Fprintln(w, ColorizeText(bannerText))
}
