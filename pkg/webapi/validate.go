package webapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/datavalidator/pkg/i18n"
	"github.com/dmitrymomot/datavalidator/pkg/logger"
	"github.com/dmitrymomot/datavalidator/pkg/ruleexpr"
	"github.com/dmitrymomot/datavalidator/pkg/validator"
)

// ValidateRequest is the body of POST /v1/validate.
// Prefix and Suffix fall back to the API key pattern when omitted.
type ValidateRequest struct {
	Lang     string            `json:"lang,omitempty"`
	Prefix   *string           `json:"prefix,omitempty"`
	Suffix   *string           `json:"suffix,omitempty"`
	Messages map[string]string `json:"messages,omitempty"`
	Fields   []FieldInput      `json:"fields"`
}

// FieldInput is one value and the rule expression it is checked against.
type FieldInput struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
	Rules string `json:"rules"`
}

// ValidateResponse reports the outcome. Fields lists failed keys in failure order,
// since JSON objects do not carry order reliably.
type ValidateResponse struct {
	Valid  bool             `json:"valid"`
	Lang   string           `json:"lang"`
	Errors validator.Errors `json:"errors"`
	Fields []string         `json:"fields"`
}

func (a *API) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, a.maxBody)

	var req ValidateRequest
	if err := bindJSON(r, &req); err != nil {
		_ = writeError(w, bindStatus(err), err, "")
		return
	}
	if len(req.Fields) == 0 {
		_ = writeError(w, http.StatusUnprocessableEntity, ErrNoFields, "")
		return
	}

	messages := make(map[validator.RuleID]string, len(req.Messages))
	for key, tmpl := range req.Messages {
		id, ok := ruleexpr.Resolve(key)
		if !ok {
			_ = writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("%w: %q", ErrUnknownMessageKey, key), "")
			return
		}
		messages[id] = tmpl
	}

	// Every expression is compiled before any rule runs, so a bad request records nothing.
	chains := make([]ruleexpr.Chain, len(req.Fields))
	for i, f := range req.Fields {
		if f.Name == "" {
			_ = writeError(w, http.StatusUnprocessableEntity, ErrUnnamedField, "")
			return
		}
		chain, err := ruleexpr.Parse(f.Rules)
		if err != nil {
			_ = writeError(w, http.StatusUnprocessableEntity, err, f.Name)
			return
		}
		chains[i] = chain
	}

	lang := req.Lang
	if lang == "" {
		lang = i18n.GetLocale(ctx)
	}
	prefix, suffix := a.prefix, a.suffix
	if req.Prefix != nil {
		prefix = *req.Prefix
	}
	if req.Suffix != nil {
		suffix = *req.Suffix
	}

	v, tag, err := a.catalog.Validator(lang,
		validator.WithMessages(messages),
		validator.WithPattern(prefix, suffix),
	)
	if err != nil {
		_ = writeError(w, http.StatusUnprocessableEntity, err, "")
		return
	}

	for i, f := range req.Fields {
		chains[i].Apply(v.Bind(f.Name, plain(f.Value)))
	}

	verrs := v.Errors()
	fields := verrs.Fields()
	if fields == nil {
		fields = []string{}
	}

	a.log.DebugContext(ctx, "validation finished",
		logger.Lang(tag.String()),
		logger.Valid(v.Validate()),
		slog.Int("fields", len(req.Fields)),
		slog.Int("failed", verrs.Len()),
	)
	for _, key := range fields {
		a.log.DebugContext(ctx, "field rejected", logger.Field(key), slog.Any("messages", verrs.Get(key)))
	}

	_ = writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:  v.Validate(),
		Lang:   tag.String(),
		Errors: verrs,
		Fields: fields,
	})
}

func bindStatus(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}
