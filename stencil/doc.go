// Package stencil builds PHP class source files.
//
// Three builders cooperate. DocComment renders a /** ... */ block for a
// field or a method. Method renders a method signature and body. Class owns
// the file: namespace, use statements, inheritance, and a flat list of body
// lines into which constants, properties, comments and methods are rendered
// as they are added.
//
//	class := stencil.New("invoice").
//		SetNamespace("Billing/Models").
//		SetParent("Model").
//		ImplementAll([]string{"Serializable"}).
//		SetIndent(1)
//
//	class.AddConstant("STATUS_PAID", stencil.String("paid")).
//		AddBlankLine().
//		AddComment(stencil.NewMethodComment("Invoice total.").ReturnFloat()).
//		AddMethod(stencil.NewPublicMethod("getTotal").
//			AddRawLine("return $this->total;", stencil.WithIndent(1)))
//
//	status, err := class.Write("src/Models")
//
// Configuration never fails. Unknown visibilities are ignored, repeated
// parameter names replace earlier ones in place, and Write skips files that
// already exist, reporting Skipped instead of overwriting.
package stencil
