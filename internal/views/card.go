package views

import "cjdelfin.dev/internal/services"

func actionClass(action services.Action) string {
	if action.Kind == services.ActionSource {
		return "button button-outline"
	}
	return "button"
}
