package http

import "strings"

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func hasField(details []FieldError, field string) bool {
	return containsFieldMsg(details, field, "")
}
