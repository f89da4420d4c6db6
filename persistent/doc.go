/*
Package persistent is the home of immutable persistent data structures, i.e.
data structures which can be copied and modified efficiently, leaving the
original unchanged. Functional programming languages like Lisp have long
relied on using them.

Immutable data structures in many cases offer benefits over mutable data structures in terms
of concurrent access and functional reasoning.  *Persistent* immutable data-structures offer
structural sharing, which means that if two data structures are mostly copies of each other,
most of the memory they take up will be shared between them. This implies that making copies
of an immutable data structure is relatively cheap in terms of space- and time-complexity.

Sub-package bst offers an ordered map, implemented as an (unbalanced) binary search tree
with path copying.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
