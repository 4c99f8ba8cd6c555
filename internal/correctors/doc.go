// Package correctors provides the optional text-correction capabilities the
// normalizer can be constructed with: a TOML-backed typo dictionary, an HTTP
// grammar service client, and a memoizing wrapper. Every capability is
// best effort; failures degrade to the uncorrected text and are never fatal
// to the pipeline.
package correctors
