// Package utils provides small helpers shared by the client packages: a
// resty-based HTTP client that tags requests with correlation ids, and the
// UUID generator producing those ids.
package utils
