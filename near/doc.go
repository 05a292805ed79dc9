// Package near exposes nearest-neighbour search over an in-memory point set
// as a SQLite virtual table.
//
//	near.Register(db, "vec3_near", ids, points)
//	CREATE VIRTUAL TABLE landmarks USING vec3_near(k=5, metric=euclidean);
//	SELECT id, distance FROM landmarks WHERE id MATCH vec3(1, 2, 3);
//
// Module arguments: k (rows per query, default 10), metric (euclidean or
// cosine), base (cover-tree base above 1), index (cover or brute) and search
// (depthfirst or bestfirst).
//
// The MATCH argument is an encoded vector BLOB or a JSON array "[x,y,z]".
// Rows come back by ascending distance.
package near
