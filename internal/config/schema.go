package config

// AllOption selects every declaration of a kind found under a module's
// source locations (e.g. `classes: CPPWG_ALL`).
const AllOption = "CPPWG_ALL"

// SourceRootPlaceholder is replaced by the source root in configured paths.
const SourceRootPlaceholder = "CPPWG_SOURCEROOT"

// Option keys shared by every level of the hierarchy.
const (
	KeyExcluded                     = "excluded"
	KeyExcludeDefaultArgs           = "exclude_default_args"
	KeyTemplateSubstitutions        = "template_substitutions"
	KeyNameReplacements             = "name_replacements"
	KeyExcludedMethods              = "excluded_methods"
	KeyExcludedVariables            = "excluded_variables"
	KeySourceIncludes               = "source_includes"
	KeySourceHppPatterns            = "source_hpp_patterns"
	KeyCommonIncludeFile            = "common_include_file"
	KeySmartPtrType                 = "smart_ptr_type"
	KeyPointerCallPolicy            = "pointer_call_policy"
	KeyReferenceCallPolicy          = "reference_call_policy"
	KeyCalldefExcludes              = "calldef_excludes"
	KeyReturnTypeExcludes           = "return_type_excludes"
	KeyConstructorArgTypeExcludes   = "constructor_arg_type_excludes"
	KeyConstructorSignatureExcludes = "constructor_signature_excludes"
	KeyPrefixText                   = "prefix_text"
	KeyCustomGenerator              = "custom_generator"
)

// PackageFile represents the root of a package document.
type PackageFile struct {
	// Name of the package; also used for the header collection guard.
	Name string `yaml:"name"`

	// Modules is the ordered list of modules in the package.
	Modules []ModuleDef `yaml:"modules"`

	// Options set at package level apply to every module and entity unless
	// overridden further down.
	Options `yaml:",inline"`
}

// ModuleDef defines one module of the package.
type ModuleDef struct {
	Name string `yaml:"name"`

	// SourceLocations are directories (relative to the source root) whose
	// headers belong to this module.
	SourceLocations []string `yaml:"source_locations,omitempty"`

	Classes       EntityList `yaml:"classes,omitempty"`
	FreeFunctions EntityList `yaml:"free_functions,omitempty"`
	Variables     EntityList `yaml:"variables,omitempty"`

	Options `yaml:",inline"`
}

// EntityList is either an explicit list of entities or the CPPWG_ALL option.
type EntityList struct {
	// All is true when the document used CPPWG_ALL.
	All bool
	// Entities lists the configured entities when All is false.
	Entities []EntityDef
}

// EntityDef configures a single class, free function or variable.
type EntityDef struct {
	Name           string `yaml:"name"`
	NameOverride   string `yaml:"name_override,omitempty"`
	SourceFile     string `yaml:"source_file,omitempty"`
	SourceFilePath string `yaml:"source_file_path,omitempty"`

	// TemplateArgLists pins the instantiations explicitly. A nil pointer means
	// "not configured"; an empty list means "templated, no instantiations".
	TemplateArgLists *ArgLists `yaml:"template_arg_lists,omitempty"`

	Options `yaml:",inline"`
}

// Options holds the hierarchical options. Nil pointers and nil slices are
// "not set" and fall through to the enclosing level.
type Options struct {
	Excluded                     *bool                  `yaml:"excluded,omitempty"`
	ExcludeDefaultArgs           *bool                  `yaml:"exclude_default_args,omitempty"`
	TemplateSubstitutions        []TemplateSubstitution `yaml:"template_substitutions,omitempty"`
	NameReplacements             Replacements           `yaml:"name_replacements,omitempty"`
	ExcludedMethods              []string               `yaml:"excluded_methods,omitempty"`
	ExcludedVariables            []string               `yaml:"excluded_variables,omitempty"`
	SourceIncludes               []string               `yaml:"source_includes,omitempty"`
	SourceHppPatterns            []string               `yaml:"source_hpp_patterns,omitempty"`
	CommonIncludeFile            *bool                  `yaml:"common_include_file,omitempty"`
	SmartPtrType                 *string                `yaml:"smart_ptr_type,omitempty"`
	PointerCallPolicy            *string                `yaml:"pointer_call_policy,omitempty"`
	ReferenceCallPolicy          *string                `yaml:"reference_call_policy,omitempty"`
	CalldefExcludes              *string                `yaml:"calldef_excludes,omitempty"`
	ReturnTypeExcludes           *string                `yaml:"return_type_excludes,omitempty"`
	ConstructorArgTypeExcludes   *string                `yaml:"constructor_arg_type_excludes,omitempty"`
	ConstructorSignatureExcludes *string                `yaml:"constructor_signature_excludes,omitempty"`
	PrefixText                   *string                `yaml:"prefix_text,omitempty"`
	CustomGenerator              *string                `yaml:"custom_generator,omitempty"`
}

// Values returns the explicitly set options keyed by option name.
// List options are returned as []any so that Node.Gather can concatenate them.
func (o *Options) Values() map[string]any {
	v := make(map[string]any)

	setBool := func(key string, b *bool) {
		if b != nil {
			v[key] = *b
		}
	}

	setString := func(key string, s *string) {
		if s != nil {
			v[key] = *s
		}
	}

	setBool(KeyExcluded, o.Excluded)
	setBool(KeyExcludeDefaultArgs, o.ExcludeDefaultArgs)
	setBool(KeyCommonIncludeFile, o.CommonIncludeFile)

	if o.TemplateSubstitutions != nil {
		v[KeyTemplateSubstitutions] = toAnySlice(o.TemplateSubstitutions)
	}

	if o.NameReplacements != nil {
		v[KeyNameReplacements] = o.NameReplacements
	}

	for key, list := range map[string][]string{
		KeyExcludedMethods:   o.ExcludedMethods,
		KeyExcludedVariables: o.ExcludedVariables,
		KeySourceIncludes:    o.SourceIncludes,
		KeySourceHppPatterns: o.SourceHppPatterns,
	} {
		if list != nil {
			v[key] = toAnySlice(list)
		}
	}

	setString(KeySmartPtrType, o.SmartPtrType)
	setString(KeyPointerCallPolicy, o.PointerCallPolicy)
	setString(KeyReferenceCallPolicy, o.ReferenceCallPolicy)
	setString(KeyCalldefExcludes, o.CalldefExcludes)
	setString(KeyReturnTypeExcludes, o.ReturnTypeExcludes)
	setString(KeyConstructorArgTypeExcludes, o.ConstructorArgTypeExcludes)
	setString(KeyConstructorSignatureExcludes, o.ConstructorSignatureExcludes)
	setString(KeyPrefixText, o.PrefixText)
	setString(KeyCustomGenerator, o.CustomGenerator)

	return v
}

// TemplateSubstitution pairs a literal template signature with the argument
// lists to instantiate for entities declared with that signature.
type TemplateSubstitution struct {
	// Signature is the literal parameter list, e.g. "<unsigned DIM_A, unsigned DIM_B = DIM_A>".
	Signature string `yaml:"signature"`
	// Replacement holds one argument list per instantiation, e.g. [[2, 2], [3, 3]].
	Replacement ArgLists `yaml:"replacement"`
}

// ArgLists is an ordered list of template argument lists. Arguments keep
// their literal spelling from the document ("2", "unsigned int", "true").
type ArgLists [][]string

// Clone returns a deep copy of the argument lists.
func (a ArgLists) Clone() ArgLists {
	if a == nil {
		return nil
	}

	out := make(ArgLists, len(a))
	for i, args := range a {
		out[i] = append([]string{}, args...)
	}

	return out
}

// Replacement is one entry of the identifier substring-replacement table.
type Replacement struct {
	From string
	To   string
}

// Replacements is an ordered substring-replacement table. Order is
// significant: "unsigned int" must be replaced before "unsigned".
type Replacements []Replacement

// DefaultReplacements returns the built-in table mapping verbose C++ type
// spellings to short identifier tokens.
func DefaultReplacements() Replacements {
	return Replacements{
		{From: "double", To: "Double"},
		{From: "unsigned int", To: "Unsigned"},
		{From: "Unsigned int", To: "Unsigned"},
		{From: "unsigned", To: "Unsigned"},
		{From: "std::vector", To: "Vector"},
		{From: "std::pair", To: "Pair"},
		{From: "std::map", To: "Map"},
		{From: "std::string", To: "String"},
		{From: "boost::shared_ptr", To: "SharedPtr"},
		{From: "std::shared_ptr", To: "SharedPtr"},
		{From: "*", To: "Ptr"},
		{From: "c_vector", To: "CVector"},
		{From: "std::set", To: "Set"},
	}
}

// Defaults returns the registered default value of every option key.
func Defaults() map[string]any {
	return map[string]any{
		KeyExcluded:                     false,
		KeyExcludeDefaultArgs:           false,
		KeyTemplateSubstitutions:        []any{},
		KeyNameReplacements:             DefaultReplacements(),
		KeyExcludedMethods:              []any{},
		KeyExcludedVariables:            []any{},
		KeySourceIncludes:               []any{},
		KeySourceHppPatterns:            []any{"*.hpp"},
		KeyCommonIncludeFile:            true,
		KeySmartPtrType:                 "",
		KeyPointerCallPolicy:            "",
		KeyReferenceCallPolicy:          "",
		KeyCalldefExcludes:              "",
		KeyReturnTypeExcludes:           "",
		KeyConstructorArgTypeExcludes:   "",
		KeyConstructorSignatureExcludes: "",
		KeyPrefixText:                   "",
		KeyCustomGenerator:              "",
	}
}

func toAnySlice[S ~[]E, E any](s S) []any {
	out := make([]any, len(s))
	for i, e := range s {
		out[i] = e
	}

	return out
}
