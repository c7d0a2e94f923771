// Package model holds the resolved view of a package: modules, their
// entities and the configuration tree they read options from.
//
// # Hierarchy
//
// A Package owns its Modules and a Module owns its entities. Every level
// carries a config.Node, chained Package -> Module -> Entity, so an entity
// option lookup falls through to the module and then the package.
//
// # Lifecycle
//
// Each entity moves through the stages
//
//	Configured -> TemplateResolved -> Bound -> Analyzed
//
// strictly in that order. Advance rejects any other transition. Excluded
// entities stay Configured and are skipped by every later stage.
//
// Declarations attached to entities are handles into the externally owned
// declaration graph; the model never mutates them.
package model
