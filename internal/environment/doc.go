// Package environment resolves the public configuration handed to the
// browser: the backend API base URL and the reCAPTCHA site key.
//
// Each value is taken from the first non-empty source in a fixed order:
//  1. the runtime process environment, read at request time;
//  2. values baked into the binary at build time with -ldflags -X;
//  3. hard-coded defaults.
//
// Every consumer (the /api/env and /api/health endpoints and the page
// bootstrap injector) resolves through the same [Resolver] so the values
// they report never disagree. Nothing is cached between calls.
package environment
