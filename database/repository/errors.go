package repository

import "errors"

// Duplicate-policy sentinels. The two entities deliberately diverge: a
// newsletter email only conflicts while the subscription is active, while a
// waitlist email conflicts forever.
var ErrAlreadySubscribed = errors.New("email already subscribed to newsletter")
var ErrAlreadyRegistered = errors.New("email already registered")

var ErrDuplicateSlug = errors.New("slug already in use")
