// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrConfiguration is returned when a client is constructed with missing or
// malformed parameters.
var ErrConfiguration = errors.New("invalid configuration")

var validate = validator.New()

// ValidateConfig checks the validate tags of a client config struct.
func ValidateConfig(cfg interface{}) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", ErrConfiguration, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q check", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(msgs, ", "))
}
