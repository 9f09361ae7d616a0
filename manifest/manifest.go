// Package manifest describes PHP classes declaratively in TOML or YAML and
// turns those descriptions into stencil class builders.
package manifest

// Manifest is one manifest file: shared defaults plus the classes it
// declares.
type Manifest struct {
	Namespace string  `toml:"namespace" yaml:"namespace"`
	Indent    *int    `toml:"indent" yaml:"indent" validate:"omitempty,gte=0"`
	Classes   []Class `toml:"classes" yaml:"classes" validate:"required,min=1,unique=Name,dive"`
}

// Class declares one class file.
type Class struct {
	Name       string     `toml:"name" yaml:"name" validate:"required"`
	File       string     `toml:"file" yaml:"file"` // output file base, defaults to name
	Namespace  string     `toml:"namespace" yaml:"namespace"`
	Extends    string     `toml:"extends" yaml:"extends"`
	Implements []string   `toml:"implements" yaml:"implements" validate:"dive,required"`
	Abstract   bool       `toml:"abstract" yaml:"abstract"`
	Imports    []Import   `toml:"imports" yaml:"imports" validate:"dive"`
	Constants  []Constant `toml:"constants" yaml:"constants" validate:"dive"`
	Properties []Property `toml:"properties" yaml:"properties" validate:"dive"`
	Methods    []Method   `toml:"methods" yaml:"methods" validate:"dive"`
}

type Import struct {
	Name  string `toml:"name" yaml:"name" validate:"required"`
	Alias string `toml:"alias" yaml:"alias"`
}

// Constant is a class constant. Expr, when set, is emitted verbatim and
// wins over Value.
type Constant struct {
	Name        string `toml:"name" yaml:"name" validate:"required"`
	Value       any    `toml:"value" yaml:"value"`
	Expr        string `toml:"expr" yaml:"expr"`
	Description string `toml:"description" yaml:"description"`
}

// Property is a class property. Visibility defaults to public.
type Property struct {
	Name        string `toml:"name" yaml:"name" validate:"required"`
	Visibility  string `toml:"visibility" yaml:"visibility" validate:"omitempty,oneof=public private protected"`
	Static      bool   `toml:"static" yaml:"static"`
	Value       any    `toml:"value" yaml:"value"`
	Expr        string `toml:"expr" yaml:"expr"`
	Type        string `toml:"type" yaml:"type"`
	Description string `toml:"description" yaml:"description"`
}

// Method is a class method. Visibility defaults to public and the
// documented return type to void.
type Method struct {
	Name        string   `toml:"name" yaml:"name" validate:"required"`
	Visibility  string   `toml:"visibility" yaml:"visibility" validate:"omitempty,oneof=public private protected"`
	Static      bool     `toml:"static" yaml:"static"`
	Abstract    bool     `toml:"abstract" yaml:"abstract"`
	Returns     string   `toml:"returns" yaml:"returns"`
	Description string   `toml:"description" yaml:"description"`
	Params      []Param  `toml:"params" yaml:"params" validate:"dive"`
	Body        []string `toml:"body" yaml:"body"`
}

type Param struct {
	Name        string `toml:"name" yaml:"name" validate:"required"`
	Type        string `toml:"type" yaml:"type"`
	Default     any    `toml:"default" yaml:"default"`
	DefaultExpr string `toml:"default_expr" yaml:"default_expr"`
	Description string `toml:"description" yaml:"description"`
}
