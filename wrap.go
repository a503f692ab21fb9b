package tpp

// Wrap splits text into lines of at most width characters, breaking at the
// last space that fits. A word longer than width is cut hard. The space at
// a break is dropped. Width is counted in runes.
func Wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	runes := []rune(text)
	for len(runes) > 0 {
		if len(runes) <= width {
			lines = append(lines, string(runes))
			break
		}
		i := width
		for i > 0 && runes[i] != ' ' {
			i--
		}
		if i == 0 {
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
			continue
		}
		lines = append(lines, string(runes[:i]))
		runes = runes[i+1:]
	}
	return lines
}
