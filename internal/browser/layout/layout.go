// internal/browser/layout/layout.go
package layout

import (
	"errors"
	"fmt"

	"github.com/Irere123/gozilla/internal/browser/parser"
	"github.com/Irere123/gozilla/internal/browser/style"
	"go.uber.org/zap"
)

var (
	// ErrAnonymousBox is returned when style is requested from an anonymous block box.
	ErrAnonymousBox = errors.New("anonymous block box has no style node")
	// ErrRootDisplayNone is returned when the root of the style tree is display:none.
	ErrRootDisplayNone = errors.New("root node has display: none")
)

// BoxType is the kind of box generated for a node.
type BoxType int

const (
	BlockNode BoxType = iota
	InlineNode
	AnonymousBlock
)

func (t BoxType) String() string {
	switch t {
	case BlockNode:
		return "block"
	case InlineNode:
		return "inline"
	case AnonymousBlock:
		return "anonymous"
	default:
		return fmt.Sprintf("BoxType(%d)", int(t))
	}
}

// LayoutBox is a node in the Layout Tree. It borrows its styled node, which is
// nil only for anonymous boxes.
type LayoutBox struct {
	Dimensions Dimensions
	BoxType    BoxType
	Children   []*LayoutBox
	styledNode *style.StyledNode
}

func newLayoutBox(boxType BoxType, styledNode *style.StyledNode) *LayoutBox {
	return &LayoutBox{BoxType: boxType, styledNode: styledNode}
}

// StyleNode returns the styled node that generated the box.
func (b *LayoutBox) StyleNode() (*style.StyledNode, error) {
	if b.BoxType == AnonymousBlock || b.styledNode == nil {
		return nil, ErrAnonymousBox
	}
	return b.styledNode, nil
}

// inlineContainer returns the box that inline children of b are attached to.
// Consecutive inline children of a block box share one anonymous block.
func (b *LayoutBox) inlineContainer() *LayoutBox {
	switch b.BoxType {
	case InlineNode, AnonymousBlock:
		return b
	default:
		if len(b.Children) > 0 {
			if lastChild := b.Children[len(b.Children)-1]; lastChild.BoxType == AnonymousBlock {
				return lastChild
			}
		}
		anonBox := newLayoutBox(AnonymousBlock, nil)
		b.Children = append(b.Children, anonBox)
		return anonBox
	}
}

// -- Layout Tree Construction --

// BuildLayoutTree constructs the box tree for a style tree. Children with
// display:none are omitted together with their subtrees.
func BuildLayoutTree(styledNode *style.StyledNode) (*LayoutBox, error) {
	var root *LayoutBox
	switch styledNode.Display() {
	case style.DisplayBlock:
		root = newLayoutBox(BlockNode, styledNode)
	case style.DisplayInline:
		root = newLayoutBox(InlineNode, styledNode)
	default:
		return nil, ErrRootDisplayNone
	}

	for _, child := range styledNode.Children {
		switch child.Display() {
		case style.DisplayBlock:
			childBox, err := BuildLayoutTree(child)
			if err != nil {
				return nil, err
			}
			root.Children = append(root.Children, childBox)
		case style.DisplayInline:
			childBox, err := BuildLayoutTree(child)
			if err != nil {
				return nil, err
			}
			container := root.inlineContainer()
			container.Children = append(container.Children, childBox)
		case style.DisplayNone:
			// Skipped along with its descendants.
		}
	}
	return root, nil
}

// -- Block Layout --

// Layout lays out b and its descendants inside the containing block. Only block
// boxes produce geometry; inline and anonymous boxes are left untouched.
func (b *LayoutBox) Layout(containingBlock Dimensions) error {
	switch b.BoxType {
	case BlockNode:
		return b.layoutBlock(containingBlock)
	default:
		return nil
	}
}

func (b *LayoutBox) layoutBlock(containingBlock Dimensions) error {
	sn, err := b.StyleNode()
	if err != nil {
		return err
	}

	// Width depends on the containing block; height depends on the children.
	b.calculateBlockWidth(sn, containingBlock)
	b.calculateBlockPosition(sn, containingBlock)
	if err := b.layoutBlockChildren(); err != nil {
		return err
	}
	b.calculateBlockHeight(sn)
	return nil
}

var (
	auto = parser.Keyword("auto")
	zero = parser.Px(0)
)

// calculateBlockWidth resolves the content width and the horizontal edges.
// See CSS 2.1 section 10.3.3.
func (b *LayoutBox) calculateBlockWidth(sn *style.StyledNode, containingBlock Dimensions) {
	width, ok := sn.Value("width")
	if !ok {
		width = auto
	}

	marginLeft := sn.Lookup("margin-left", "margin", zero)
	marginRight := sn.Lookup("margin-right", "margin", zero)
	borderLeft := sn.Lookup("border-left-width", "border-width", zero)
	borderRight := sn.Lookup("border-right-width", "border-width", zero)
	paddingLeft := sn.Lookup("padding-left", "padding", zero)
	paddingRight := sn.Lookup("padding-right", "padding", zero)

	total := width.ToPx() +
		marginLeft.ToPx() + marginRight.ToPx() +
		borderLeft.ToPx() + borderRight.ToPx() +
		paddingLeft.ToPx() + paddingRight.ToPx()

	// An over-constrained box treats auto margins as zero.
	if width != auto && total > containingBlock.Content.Width {
		if marginLeft == auto {
			marginLeft = zero
		}
		if marginRight == auto {
			marginRight = zero
		}
	}

	underflow := containingBlock.Content.Width - total

	switch widthAuto, leftAuto, rightAuto := width == auto, marginLeft == auto, marginRight == auto; {
	case !widthAuto && !leftAuto && !rightAuto:
		marginRight = parser.Px(marginRight.ToPx() + underflow)
	case !widthAuto && !leftAuto && rightAuto:
		marginRight = parser.Px(underflow)
	case !widthAuto && leftAuto && !rightAuto:
		marginLeft = parser.Px(underflow)
	case widthAuto:
		if leftAuto {
			marginLeft = zero
		}
		if rightAuto {
			marginRight = zero
		}
		if underflow >= 0 {
			width = parser.Px(underflow)
		} else {
			// Width can't be negative; the right margin takes the overflow.
			width = zero
			marginRight = parser.Px(marginRight.ToPx() + underflow)
		}
	default:
		// Both margins auto: center the box.
		marginLeft = parser.Px(underflow / 2)
		marginRight = parser.Px(underflow / 2)
	}

	d := &b.Dimensions
	d.Content.Width = width.ToPx()
	d.Padding.Left = paddingLeft.ToPx()
	d.Padding.Right = paddingRight.ToPx()
	d.Border.Left = borderLeft.ToPx()
	d.Border.Right = borderRight.ToPx()
	d.Margin.Left = marginLeft.ToPx()
	d.Margin.Right = marginRight.ToPx()
}

// calculateBlockPosition places the box below the content already laid out in the
// containing block. Vertical auto margins resolve to zero.
func (b *LayoutBox) calculateBlockPosition(sn *style.StyledNode, containingBlock Dimensions) {
	d := &b.Dimensions

	d.Margin.Top = sn.Lookup("margin-top", "margin", zero).ToPx()
	d.Margin.Bottom = sn.Lookup("margin-bottom", "margin", zero).ToPx()
	d.Border.Top = sn.Lookup("border-top-width", "border-width", zero).ToPx()
	d.Border.Bottom = sn.Lookup("border-bottom-width", "border-width", zero).ToPx()
	d.Padding.Top = sn.Lookup("padding-top", "padding", zero).ToPx()
	d.Padding.Bottom = sn.Lookup("padding-bottom", "padding", zero).ToPx()

	d.Content.X = containingBlock.Content.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = containingBlock.Content.Y + containingBlock.Content.Height +
		d.Margin.Top + d.Border.Top + d.Padding.Top
}

// layoutBlockChildren stacks the children vertically, growing the content height
// by each child's margin box as it goes.
func (b *LayoutBox) layoutBlockChildren() error {
	d := &b.Dimensions
	d.Content.Height = 0
	for _, child := range b.Children {
		if err := child.Layout(*d); err != nil {
			return err
		}
		d.Content.Height += child.Dimensions.MarginBox().Height
	}
	return nil
}

// calculateBlockHeight applies an explicit pixel height, if any.
func (b *LayoutBox) calculateBlockHeight(sn *style.StyledNode) {
	if height, ok := sn.Value("height"); ok && height.Kind == parser.KindLength && height.Unit == parser.UnitPx {
		b.Dimensions.Content.Height = height.Length
	}
}

// -- Engine Core --

// LayoutTree builds the box tree for root and lays it out in the viewport. The
// viewport height bounds painting only, so the root box starts at the viewport's
// top edge.
func LayoutTree(root *style.StyledNode, viewport Dimensions) (*LayoutBox, error) {
	box, err := BuildLayoutTree(root)
	if err != nil {
		return nil, err
	}

	containingBlock := viewport
	containingBlock.Content.Height = 0
	if err := box.Layout(containingBlock); err != nil {
		return nil, err
	}
	return box, nil
}

// Engine runs layout passes against a fixed viewport.
type Engine struct {
	viewport Dimensions
	logger   *zap.Logger
}

// NewEngine creates a layout engine for a viewport of the given size. A nil
// logger disables logging.
func NewEngine(viewportWidth, viewportHeight float32, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		viewport: Dimensions{Content: Rect{Width: viewportWidth, Height: viewportHeight}},
		logger:   logger.Named("layout"),
	}
}

// Viewport returns the containing block used for the root box.
func (e *Engine) Viewport() Dimensions {
	return e.viewport
}

// BuildAndLayoutTree orchestrates box construction and block layout.
func (e *Engine) BuildAndLayoutTree(styleRoot *style.StyledNode) (*LayoutBox, error) {
	if styleRoot == nil {
		return nil, fmt.Errorf("layout: nil style tree")
	}

	box, err := LayoutTree(styleRoot, e.viewport)
	if err != nil {
		e.logger.Error("Layout failed", zap.Error(err))
		return nil, fmt.Errorf("layout: %w", err)
	}

	e.logger.Debug("Layout complete",
		zap.Int("boxes", box.count()),
		zap.Float32("width", box.Dimensions.Content.Width),
		zap.Float32("height", box.Dimensions.MarginBox().Height),
	)
	return box, nil
}

// count returns the number of boxes in the subtree rooted at b.
func (b *LayoutBox) count() int {
	n := 1
	for _, child := range b.Children {
		n += child.count()
	}
	return n
}
