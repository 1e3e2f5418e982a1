// Package nodeid gives every node of a resolved tree a canonical, structured
// address — the kind tag and sibling index of each step from the root, e.g.
// "frame[0].box[1].text[0]".
//
// Addresses key the collapse-flag table in exported documents: the resolved
// tree itself is identity-keyed in memory, but a presentation layer on the
// other side of a serialization boundary needs a stable textual identity.
package nodeid
