// Package scene holds the retained node tree a label renders into.
//
// A Group is the attach point handed to the host. It owns one Batch per
// texture (the primary font, each fallback font and the emoji sheet) plus
// any custom nodes. A Batch is an arena of Sprites indexed by position:
// sprites are created on first use, reused on later layouts and hidden
// rather than freed when the text shrinks.
//
// Positions are top-left corners in the parent's coordinate space with Y
// growing downwards.
package scene
