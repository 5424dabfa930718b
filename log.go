// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unitext

import (
	"github.com/sirupsen/logrus"
)

const (
	// LocaleLogField is the log field holding the locale of a case mapping.
	LocaleLogField = "locale"
	// PatternLogField is the log field holding the source of a regex.
	PatternLogField = "pattern"
	// EngineLogField is the log field holding the name of a regex engine.
	EngineLogField = "engine"
)

var logger = newLogger(logrus.StandardLogger())

func newLogger(l *logrus.Logger) *logrus.Entry {
	return l.WithField("component", "unitext")
}

// SetLogger replaces the logger used by this package. It is meant to be
// called once, before any other function of the package.
func SetLogger(l *logrus.Logger) {
	logger = newLogger(l)
}
