// Package member holds the club member entity and its value objects.
//
// Every value object is an immutable struct around a validated string. The
// constructors NewX return a validation error carrying the type's XConstraints
// message, so an invalid value never exists.
package member
