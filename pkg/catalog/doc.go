/*
Package catalog groups node types into installable modules.

A Catalog is an ordered, id-keyed set of node types: the unit a shell
lists, a web editor renders, and a code generator walks. A Module
bundles a catalog with the code generation handlers and the
calculations its types need, so installing the module is all it takes
to make its types creatable, generatable, and evaluatable. A Registry
holds the installed modules by name.
*/
package catalog
