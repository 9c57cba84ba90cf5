// Package mongoskema translates validation-schema node trees into document-
// database schema definitions.
//
// It provides:
//
//   - A closed, classified node algebra (primitives, composites, wrapper and
//     transform kinds) with stable Kind dispatch
//   - Extension metadata (uniqueness, sparseness, foreign references, custom
//     validators) threaded explicitly through refinement and wrapping
//   - A recursive translator emitting docschema field descriptors, plus a
//     constructor entry point forwarding passthrough schema options
//   - A stable error model via Issues (field path, code, message)
//
// Design policy:
//   - Keep only public APIs and the translation engine in the root package.
//   - Place node constructors under dsl/, the output model under docschema/,
//     and the declarative importer under yamlschema/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.Object().
//		Field("email", dsl.String().Max(120).Unique()).
//		Field("age", dsl.Number().Min(0).Optional())
//	def, err := mongoskema.Definition(user)
//	sch, err := mongoskema.SchemaOf(user, docschema.Options{Collection: "users"})
package mongoskema
