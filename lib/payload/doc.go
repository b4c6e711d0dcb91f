// Package payload provides the synthetic domain dataset used as the common
// workload for all serialization benchmarks. It defines the object graph
// (users with profiles, addresses, orders, social connections) and a
// deterministic generator that produces identically shaped datasets for a
// given complexity tier and seed.
//
// The package focuses on:
//   - Reproducibility: the same (tier, seed) pair always yields a dataset
//     with identical collection sizes and field population
//   - Fairness: monetary and decimal values are fixed-precision strings so
//     no wire format gains or loses accuracy through float rounding
//   - Realism: nested collections, enumerations, open-ended key/value maps
//     and free text stress the same code paths production payloads would
//
// Key Components:
//
//   - Dataset: the aggregate root holding the generated users. Datasets are
//     immutable by convention once generated and may be shared across
//     benchmark iterations.
//
//   - ComplexityTier: named size classes (SMALL, MEDIUM, LARGE, HUGE) that
//     map to a static table of collection counts. Tiers are strictly
//     ordered: a larger tier always serializes to more bytes than a smaller
//     one under any backend.
//
//   - Generate: the deterministic generator. Generation never fails for a
//     valid tier; passing an unknown tier is a programming error and panics.
//
// Thread Safety:
//
//	Generate is a pure function and safe to call concurrently. Generated
//	datasets must not be mutated by callers.
package payload
