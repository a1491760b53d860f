// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package http

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/LerianStudio/sales-report/pkg"

	"github.com/gofiber/fiber/v2"
)

// DecodeHandlerFunc is a handler which works with withBody decorator.
// It receives a struct which was decoded by withBody decorator before.
// Ex: json -> withBody -> DecodeHandlerFunc.
type DecodeHandlerFunc func(p any, c *fiber.Ctx) error

// decoderHandler decodes payload coming from requests.
type decoderHandler struct {
	handler      DecodeHandlerFunc
	structSource any
}

func newOfType(s any) any {
	t := reflect.TypeOf(s)
	v := reflect.New(t.Elem())

	return v.Interface()
}

// WithBody decodes the JSON body into a new value of the type s points to and passes it to h.
// An empty body yields the zero value; unknown top-level fields are rejected.
func WithBody(s any, h DecodeHandlerFunc) fiber.Handler {
	d := &decoderHandler{
		handler:      h,
		structSource: s,
	}

	return d.FiberHandlerFunc
}

// FiberHandlerFunc decodes the request body, checks it for unknown fields and calls the wrapped handler.
func (d *decoderHandler) FiberHandlerFunc(c *fiber.Ctx) error {
	s := newOfType(d.structSource)

	bodyBytes := c.Body()

	trimmedBody := strings.TrimSpace(string(bodyBytes))
	if trimmedBody == "" || trimmedBody == "null" {
		return d.handler(s, c)
	}

	var originalMap map[string]any
	if err := json.Unmarshal(bodyBytes, &originalMap); err != nil {
		return WithError(c, pkg.ValidateBadRequestError(err, entityName(s)))
	}

	if err := json.Unmarshal(bodyBytes, s); err != nil {
		return WithError(c, pkg.ValidateBadRequestError(err, entityName(s)))
	}

	if unknown := findUnknownFields(originalMap, s); len(unknown) > 0 {
		return WithError(c, pkg.ValidateBadRequestError(
			fmt.Errorf("unexpected fields %s", strings.Join(unknown, ", ")), entityName(s)))
	}

	return d.handler(s, c)
}

// findUnknownFields lists the top-level keys of original that s does not marshal back.
func findUnknownFields(original map[string]any, s any) []string {
	marshaled, err := json.Marshal(s)
	if err != nil {
		return nil
	}

	var marshaledMap map[string]any
	if err := json.Unmarshal(marshaled, &marshaledMap); err != nil {
		return nil
	}

	var unknown []string

	for key := range original {
		if _, ok := marshaledMap[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	sort.Strings(unknown)

	return unknown
}

func entityName(s any) string {
	return reflect.TypeOf(s).Elem().Name()
}
