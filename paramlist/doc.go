// Package paramlist holds named, typed parameter values.
//
// A ParamValue pairs an interned name with a TypeDesc and a raw byte
// block sized by the type's layout, the way image and geometry metadata
// attributes are usually carried. ParamValueList adds lookup, replace,
// and a deterministic sort using the descriptor total order.
//
// Lists serialize to canonical CBOR; the descriptor itself travels as
// its fixed 8-byte wire image so the enum codes stay byte-stable.
package paramlist
