package webapi

import (
	"net/http"

	"github.com/dmitrymomot/datavalidator/pkg/i18n"
	"github.com/dmitrymomot/datavalidator/pkg/ruleexpr"
	"github.com/dmitrymomot/datavalidator/pkg/validator"
)

// RulesResponse lists the templates of one language and the expression aliases.
type RulesResponse struct {
	Lang      string                      `json:"lang"`
	Languages []string                    `json:"languages"`
	Messages  map[validator.RuleID]string `json:"messages"`
	Aliases   map[string]validator.RuleID `json:"aliases"`
}

func (a *API) rules(w http.ResponseWriter, r *http.Request) {
	lang := i18n.GetLocale(r.Context())
	msgs, tag, err := a.catalog.Messages(lang)
	if err != nil {
		_ = writeError(w, http.StatusUnprocessableEntity, err, "")
		return
	}

	_ = writeJSON(w, http.StatusOK, RulesResponse{
		Lang:      tag.String(),
		Languages: a.catalog.Languages(),
		Messages:  msgs,
		Aliases:   ruleexpr.Aliases(),
	})
}
