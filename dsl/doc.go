// Package dsl provides the node constructors of the validation-type algebra:
// primitives (String, Number, Bool, Date), composites (Object, Array, MapOf,
// Union, Enum), wrappers (Optional, Nullable, Default), transform pipes
// (Preprocess, Transform) and foreign-reference identifiers (ObjectID, UUID).
//
// Every constructor returns a node carrying its kind by construction; the root
// package classifies and translates nodes purely through interfaces. Builder
// methods that derive a stricter node (Refine) copy extension metadata forward
// so uniqueness, sparseness and earlier checks survive the derivation.
//
// Register installs identifier format checks once per process; calling it
// again is a no-op.
package dsl
