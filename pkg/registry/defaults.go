package registry

import (
	"sync"

	"github.com/joshuapare/stylekit/pkg/types"
)

// Ids of the built-in property set.
const (
	Display types.PropertyID = iota
	Position
	Visibility
	Opacity
	Color
	BackgroundColor
	FontFamily
	FontSize
	FontWeight
	FontStyle
	LineHeight
	LetterSpacing
	TextAlign
	TextDecoration
	WhiteSpace
	Cursor
	Width
	Height
	MinWidth
	MinHeight
	MaxWidth
	MaxHeight
	MarginTop
	MarginRight
	MarginBottom
	MarginLeft
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	BorderWidth
	BorderColor
	BorderRadius
	Top
	Right
	Bottom
	Left
	ZIndex
	Overflow
	BoxSizing
	FlexDirection
	FlexGrow
	FlexShrink
	FlexBasis
	AlignItems
	JustifyContent
	Gap
	Transform
	PointerEvents
	ListStyleType

	numBuiltins
)

var builtins = [numBuiltins]Def{
	Display:         {Name: "display"},
	Position:        {Name: "position"},
	Visibility:      {Name: "visibility", Inherited: true},
	Opacity:         {Name: "opacity", Animatable: true},
	Color:           {Name: "color", Inherited: true, Animatable: true},
	BackgroundColor: {Name: "background-color", Animatable: true},
	FontFamily:      {Name: "font-family", Inherited: true},
	FontSize:        {Name: "font-size", Inherited: true, Animatable: true},
	FontWeight:      {Name: "font-weight", Inherited: true, Animatable: true},
	FontStyle:       {Name: "font-style", Inherited: true},
	LineHeight:      {Name: "line-height", Inherited: true, Animatable: true},
	LetterSpacing:   {Name: "letter-spacing", Inherited: true, Animatable: true},
	TextAlign:       {Name: "text-align", Inherited: true},
	TextDecoration:  {Name: "text-decoration"},
	WhiteSpace:      {Name: "white-space", Inherited: true},
	Cursor:          {Name: "cursor", Inherited: true},
	Width:           {Name: "width", Animatable: true},
	Height:          {Name: "height", Animatable: true},
	MinWidth:        {Name: "min-width", Animatable: true},
	MinHeight:       {Name: "min-height", Animatable: true},
	MaxWidth:        {Name: "max-width", Animatable: true},
	MaxHeight:       {Name: "max-height", Animatable: true},
	MarginTop:       {Name: "margin-top", Animatable: true},
	MarginRight:     {Name: "margin-right", Animatable: true},
	MarginBottom:    {Name: "margin-bottom", Animatable: true},
	MarginLeft:      {Name: "margin-left", Animatable: true},
	PaddingTop:      {Name: "padding-top", Animatable: true},
	PaddingRight:    {Name: "padding-right", Animatable: true},
	PaddingBottom:   {Name: "padding-bottom", Animatable: true},
	PaddingLeft:     {Name: "padding-left", Animatable: true},
	BorderWidth:     {Name: "border-width", Animatable: true},
	BorderColor:     {Name: "border-color", Animatable: true},
	BorderRadius:    {Name: "border-radius", Animatable: true},
	Top:             {Name: "top", Animatable: true},
	Right:           {Name: "right", Animatable: true},
	Bottom:          {Name: "bottom", Animatable: true},
	Left:            {Name: "left", Animatable: true},
	ZIndex:          {Name: "z-index"},
	Overflow:        {Name: "overflow"},
	BoxSizing:       {Name: "box-sizing"},
	FlexDirection:   {Name: "flex-direction"},
	FlexGrow:        {Name: "flex-grow", Animatable: true},
	FlexShrink:      {Name: "flex-shrink", Animatable: true},
	FlexBasis:       {Name: "flex-basis", Animatable: true},
	AlignItems:      {Name: "align-items"},
	JustifyContent:  {Name: "justify-content"},
	Gap:             {Name: "gap", Animatable: true},
	Transform:       {Name: "transform", Animatable: true},
	PointerEvents:   {Name: "pointer-events", Inherited: true},
	ListStyleType:   {Name: "list-style-type", Inherited: true},
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	defs := make([]Def, len(builtins))
	for i, d := range builtins {
		d.ID = types.PropertyID(i)
		defs[i] = d
	}
	r, err := New(defs)
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the built-in property set.
func Default() *Registry {
	return defaultRegistry()
}
