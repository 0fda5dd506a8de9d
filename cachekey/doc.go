// Package cachekey derives a stable fingerprint for a chromosome, letting
// callers key an external memoization cache (e.g. a fitness-evaluation
// cache in the surrounding search loop, which is out of this repository's
// scope) by genome content rather than by object identity.
package cachekey
