package esparse

// commentEntry pairs a collected comment with the offset the attachment
// pass compares node boundaries against.
type commentEntry struct {
	comment *Comment
	start   int
}

// nodeInfo remembers a finalized node and where it started, for trailing
// comment resolution.
type nodeInfo struct {
	node  Node
	start int
}

// commentHandler implements the leading/trailing/inner attachment heuristic
// as a pass over the delegate stream: comments and finalized nodes arrive
// in source order and are matched by offset.
type commentHandler struct {
	attach   bool
	comments []*Comment
	stack    []nodeInfo
	leading  []commentEntry
	trailing []commentEntry
}

func newCommentHandler() *commentHandler {
	return &commentHandler{}
}

// insertInnerComments moves comments trapped in an empty block, e.g.
// `function a() {/* comment */}`, onto the block itself.
func (h *commentHandler) insertInnerComments(n Node, metadata NodeMetadata) {
	block, ok := n.(*BlockStatement)
	if !ok || len(block.Body) != 0 {
		return
	}
	var innerComments []*Comment
	for i := len(h.leading) - 1; i >= 0; i-- {
		entry := h.leading[i]
		if metadata.End.Offset >= entry.start {
			innerComments = append([]*Comment{entry.comment}, innerComments...)
			h.leading = append(h.leading[:i], h.leading[i+1:]...)
		}
	}
	if len(innerComments) > 0 {
		block.InnerComments = innerComments
	}
}

func (h *commentHandler) findTrailingComments(metadata NodeMetadata) []*Comment {
	var trailingComments []*Comment

	if len(h.trailing) > 0 {
		for i := len(h.trailing) - 1; i >= 0; i-- {
			entry := h.trailing[i]
			if entry.start >= metadata.End.Offset {
				trailingComments = append([]*Comment{entry.comment}, trailingComments...)
			}
		}
		h.trailing = h.trailing[:0]
		return trailingComments
	}

	if len(h.stack) > 0 {
		entry := h.stack[len(h.stack)-1]
		if entry.node != nil {
			base := entry.node.base()
			if len(base.TrailingComments) > 0 {
				firstComment := base.TrailingComments[0]
				if firstComment.Range != nil && firstComment.Range[0] >= metadata.End.Offset {
					trailingComments = base.TrailingComments
					base.TrailingComments = nil
				}
			}
		}
	}
	return trailingComments
}

func (h *commentHandler) findLeadingComments(metadata NodeMetadata) []*Comment {
	var leadingComments []*Comment

	var target Node
	for len(h.stack) > 0 {
		entry := h.stack[len(h.stack)-1]
		if entry.start >= metadata.Start.Offset {
			target = entry.node
			h.stack = h.stack[:len(h.stack)-1]
		} else {
			break
		}
	}

	if target != nil {
		base := target.base()
		for i := len(base.LeadingComments) - 1; i >= 0; i-- {
			comment := base.LeadingComments[i]
			if comment.Range != nil && comment.Range[1] <= metadata.Start.Offset {
				leadingComments = append([]*Comment{comment}, leadingComments...)
				base.LeadingComments = append(base.LeadingComments[:i], base.LeadingComments[i+1:]...)
			}
		}
		if len(base.LeadingComments) == 0 {
			base.LeadingComments = nil
		}
		return leadingComments
	}

	for i := len(h.leading) - 1; i >= 0; i-- {
		entry := h.leading[i]
		if entry.start <= metadata.Start.Offset {
			leadingComments = append([]*Comment{entry.comment}, leadingComments...)
			h.leading = append(h.leading[:i], h.leading[i+1:]...)
		}
	}

	return leadingComments
}

func (h *commentHandler) visitNode(n Node, metadata NodeMetadata) {
	if prog, isProgram := n.(*Program); isProgram && len(prog.Body) > 0 {
		return
	}

	if h.attach {
		h.insertInnerComments(n, metadata)
		trailingComments := h.findTrailingComments(metadata)
		leadingComments := h.findLeadingComments(metadata)
		base := n.base()
		if len(leadingComments) > 0 {
			base.LeadingComments = leadingComments
		}
		if len(trailingComments) > 0 {
			base.TrailingComments = trailingComments
		}
	}

	h.stack = append(h.stack, nodeInfo{node: n, start: metadata.Start.Offset})
}

func (h *commentHandler) visitComment(c *Comment, metadata NodeMetadata) {
	h.comments = append(h.comments, c)

	if h.attach {
		entry := commentEntry{comment: c, start: metadata.Start.Offset}
		h.leading = append(h.leading, entry)
		h.trailing = append(h.trailing, entry)
	}
}

// visit dispatches a delegate callback to the node or comment path.
func (h *commentHandler) visit(n interface{}, metadata NodeMetadata) {
	switch v := n.(type) {
	case *Comment:
		h.visitComment(v, metadata)
	case Node:
		h.visitNode(v, metadata)
	}
}
