// Package scenarios holds the contract tests for the market data API.
//
// By default the tests run against an in-process stub server. Build with
// -tags live to run them against the environment selected by ENV in the
// repository's .env file instead:
//
//	go test ./internal/scenarios/...
//	go test -tags live ./internal/scenarios/...
//
// MARKETPROBE_TAGS narrows the run to tests carrying one of the listed tags:
//
//	MARKETPROBE_TAGS=smoke go test -tags live ./internal/scenarios/...
package scenarios
