package middleware

import "net/http"

// methodField is the hidden form field browsers use to express PUT and
// DELETE, since HTML forms only submit GET and POST.
const methodField = "_method"

// MethodOverride rewrites a POST to the verb named in the _method form field.
// It must run before routing so the mux dispatches on the real method.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch r.PostFormValue(methodField) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
