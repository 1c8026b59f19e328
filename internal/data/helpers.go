package data

import "strings"

// parsePinList splits a mixed assignment list into pins to assign and pins to
// unassign; a leading '-' marks unassignment.
func parsePinList(pins []string) (assignList []string, unassignList []string) {
	for _, pin := range pins {
		if pin == "" {
			continue
		}
		if pin[0] != '-' {
			assignList = append(assignList, pin)
		} else {
			cleanStr := strings.TrimPrefix(pin, "-")
			unassignList = append(unassignList, cleanStr)
		}
	}

	return
}
