// Package upstream is the client for the remote, read-only catalog API.
//
// It issues two kinds of requests, each with its own bounded timeout:
//
//   - FetchPage: GET {base_url}{list_path}?limit=&offset=
//   - FetchDetail: GET {url}, where url comes verbatim from a list entry
//
// Both report transport failures and non-2xx statuses (as *StatusError) to the
// caller. The client never retries; deciding that a list failure is fatal and a
// detail failure is skippable is the reconciler's job.
//
// The response types mirror the upstream JSON. Detail uses pointer fields so a
// missing id or name can be told apart from a zero value.
package upstream
