package api

import (
	"strings"

	"github.com/tidwall/gjson"
)

// serverMessage extracts the backend's own error text. FastAPI reports
// either {"detail": "text"} or a validation array
// {"detail": [{"msg": "..."}]}; other services use {"message": "..."}.
func serverMessage(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return ""
	}

	detail := gjson.GetBytes(body, "detail")
	switch {
	case detail.Type == gjson.String:
		if s := strings.TrimSpace(detail.String()); s != "" {
			return s
		}
	case detail.IsArray():
		if s := strings.TrimSpace(detail.Get("0.msg").String()); s != "" {
			return s
		}
	case detail.IsObject():
		if s := strings.TrimSpace(detail.Get("message").String()); s != "" {
			return s
		}
	}

	if m := gjson.GetBytes(body, "message"); m.Type == gjson.String {
		return strings.TrimSpace(m.String())
	}
	return ""
}
