package layouts

// CalculateTitle handles the conditional logic for the page title.
// It is exported so it can be called from other template packages.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Vitrina"
	}
	return "Vitrina"
}
