/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

// NullNodeDef is the not-found node type definition: null tag, null
// version, no attributes, no rules.
var NullNodeDef INodeDef = nullNodeDef{}

type nullNodeDef struct{}

func (nullNodeDef) QName() QName			{ return NullQName }
func (nullNodeDef) TypeName() string			{ return "" }
func (nullNodeDef) Tag() string				{ return "" }
func (nullNodeDef) TagFold() bool			{ return false }
func (nullNodeDef) Version() Version			{ return NullVersion }
func (nullNodeDef) SkipFlags() uint64			{ return 0 }
func (nullNodeDef) IsText() bool			{ return false }
func (nullNodeDef) Text() IBinding			{ return nil }
func (nullNodeDef) NamespaceAttr() string		{ return "" }
func (nullNodeDef) AdmitsParent(QName) bool		{ return false }
func (nullNodeDef) Attr(string) IAttrDef		{ return nil }
func (nullNodeDef) Attrs(func(IAttrDef))		{}
func (nullNodeDef) ChildRules(func(IChildRule))		{}
func (nullNodeDef) ChoiceRules(func(IChoiceRule))	{}
func (nullNodeDef) AdmitsChild(string) bool		{ return false }
func (nullNodeDef) Unsupported(string) bool		{ return false }
