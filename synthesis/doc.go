// Package synthesis orchestrates federated queries across registered data
// source providers and merges their translated results into single canonical
// streams.
//
// A Synthesizer is built once from a loaded catalog and a set of providers;
// duplicate provider ids are rejected at construction. Each query operation
// plans eagerly and fetches lazily: provider eligibility, filter support
// gating, and query translation happen when the operation is called, while
// provider I/O happens as the caller consumes the returned result sequence.
//
// Providers dispatch in registration order. A provider whose translated
// query came back invalid is skipped with a message; a provider that fails
// mid-fetch contributes the records it already produced plus an error
// message, and the remaining providers still run. The result stream is never
// torn down by a single provider's failure.
//
// Every operation returns a Response pairing the lazy result sequence with
// the message list that accumulates while the sequence is consumed. Read the
// messages after draining the stream.
package synthesis
