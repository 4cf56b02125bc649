package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/latitune-backend/internal/domain"
)

// MaxBodyBytes bounds request bodies read for parameters.
const MaxBodyBytes = 1 << 20

// ErrorWriter renders err as the response. Middleware that short-circuits a
// request delegates the response format to it.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

type valuesKey struct{}

// Params parses the request parameters once and stores them in the context.
// Values are the query string merged with the body for PUT, POST and PATCH.
// Form, multipart and JSON object bodies are accepted; JSON scalars are
// converted to their string form. A malformed body is reported through fail
// as a domain.ErrValidation.
func Params(fail ErrorWriter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			vals, err := parseValues(r)
			if err != nil {
				fail(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), valuesKey{}, vals)))
		})
	}
}

// Values returns the request parameters stored by Params, or the query
// string when Params did not run.
func Values(r *http.Request) url.Values {
	if v, ok := r.Context().Value(valuesKey{}).(url.Values); ok {
		return v
	}
	return r.URL.Query()
}

// Has reports whether the parameter key is present, even with an empty value.
func Has(r *http.Request, name string) bool {
	_, ok := Values(r)[name]
	return ok
}

// RequireParams short-circuits with domain.ErrMissingParameter unless every
// name is present in the request values. The store is never touched.
func RequireParams(fail ErrorWriter, names ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			vals := Values(r)
			for _, name := range names {
				if _, ok := vals[name]; !ok {
					fail(w, r, fmt.Errorf("%s: %w", name, domain.ErrMissingParameter))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func parseValues(r *http.Request) (url.Values, error) {
	vals := r.URL.Query()

	switch r.Method {
	case http.MethodPut, http.MethodPost, http.MethodPatch:
	default:
		return vals, nil
	}
	if r.Body == nil || r.Body == http.NoBody {
		return vals, nil
	}

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/json":
		body, err := decodeJSONObject(io.LimitReader(r.Body, MaxBodyBytes))
		if err != nil {
			return nil, err
		}
		mergeValues(vals, body)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxBodyBytes); err != nil {
			return nil, domain.NewValidationError("body", "malformed multipart body")
		}
		mergeValues(vals, r.MultipartForm.Value)
	default:
		r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return nil, domain.NewValidationError("body", "malformed form body")
		}
		mergeValues(vals, r.PostForm)
	}

	return vals, nil
}

func mergeValues(dst url.Values, src map[string][]string) {
	for k, v := range src {
		dst[k] = append(dst[k], v...)
	}
}

func decodeJSONObject(body io.Reader) (url.Values, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		if errors.Is(err, io.EOF) {
			return url.Values{}, nil
		}
		return nil, domain.NewValidationError("body", "malformed JSON object")
	}

	out := make(url.Values, len(obj))
	for k, v := range obj {
		s, err := jsonString(v)
		if err != nil {
			return nil, domain.NewValidationError(k, "unsupported value")
		}
		out.Set(k, s)
	}
	return out, nil
}

func jsonString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		b, err := json.Marshal(t)
		return string(b), err
	}
}
