// Package traits defines a read-only capability model for 2D vector geometry.
//
// The interfaces describe what an algorithm may observe about a point, a line
// string, a polygon, their multi- variants and a heterogeneous collection.
// They say nothing about storage: a slice of structs, a flat coordinate
// buffer or a foreign library's types can all satisfy them, and code written
// against the interfaces is instantiated per representation with no boxing.
//
// Containers are parameterized by their item types. Family binds one concrete
// type per geometry kind and is the value generic algorithms take so that
// every type parameter is inferred at the call site.
//
// Every sequence capability follows the same rules:
//
//   - the count equals the number of items the sequence yields;
//   - positional access at i in [0, count) yields the i-th item of the sequence;
//   - positional access outside that range reports false, it never panics;
//   - every range over a fresh sequence starts at the first item.
//
// Items alias the container's storage where the representation allows it and
// are valid while the container is not mutated. Nothing in this package
// mutates, allocates storage for, or releases a geometry.
package traits
