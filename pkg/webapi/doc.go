// Package webapi exposes rule-expression validation over HTTP/JSON with a chi router.
//
// POST /v1/validate takes a list of fields, each with a value and a rule expression
// (see package ruleexpr), and answers with the outcome and the recorded messages in the
// requested language:
//
//	{"lang":"pt-BR","fields":[{"name":"age","value":17,"rules":"required|min_value:18,true"}]}
//
// The language comes from the body, then the request (query, cookie, Accept-Language),
// then the catalog default. Malformed JSON is a 400; unknown rules, bad arguments and
// unsupported languages are a 422. Validation failures are a normal 200 answer.
package webapi
