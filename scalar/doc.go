// Package scalar defines the capability contract every vector component type
// satisfies: float-like arithmetic plus the handful of elementary functions
// (square root, trigonometry, reciprocal) and the comparison epsilon used by
// the vector package. All helpers are generic and resolved at compile time;
// 32-bit scalars are computed in single precision via math32.
package scalar
