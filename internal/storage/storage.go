// Package storage is the on-device key-value store. Records are independent,
// self-contained text documents addressed by fixed keys; there is no
// cross-record transaction.
package storage

import (
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("record not found")

// Keys of the three persisted records. Names match what the mobile shell
// wrote, so existing installations keep their data.
const (
	UserDataKey           = "userData"
	OnboardingCompleteKey = "onboardingComplete"
	AppLanguageKey        = "appLanguage"
)
