// Package store persists labelled 3D points in SQLite and answers nearest and
// radius queries through the vec3_* SQL functions of package engine.
package store
