// Package flash implements one-shot status state surviving exactly one
// redirect: values are written to a cookie before the redirect and the
// cookie is cleared as soon as they are read.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
)

// CookieName is the name of the flash cookie.
const CookieName = "contactbook_flash"

// Values carries the flash messages and flags for one redirect.
type Values map[string]string

// SetBool stores a boolean flag.
func (v Values) SetBool(key string, val bool) {
	v[key] = strconv.FormatBool(val)
}

// Bool reads a boolean flag; absent keys read as false.
func (v Values) Bool(key string) bool {
	return v[key] == "true"
}

// Set writes the values into the flash cookie.
func Set(w http.ResponseWriter, values Values) {
	if len(values) == 0 {
		return
	}
	payload, err := json.Marshal(values)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Take reads the flash values from the request and clears the cookie,
// so a value is observable exactly once. Returns nil when there is no
// flash state.
func Take(w http.ResponseWriter, r *http.Request) Values {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	// Clear regardless of whether the payload decodes
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var values Values
	if err := json.Unmarshal(payload, &values); err != nil {
		return nil
	}
	return values
}
