package swiper

// Exclusive wires the usual blocking convention between panels that must
// not be open at the same time: whenever one of the actions finishes a
// settle, every other action in the group is blocked while it is extended
// and unblocked once it is collapsed again.
//
// Exclusive wraps the listeners already set on the actions, so it must be
// called after SetListener. The core never enforces this by itself;
// blocking is only a flag each dispatcher consults.
func Exclusive(actions ...*Action) {
	for _, owner := range actions {
		others := make([]*Action, 0, len(actions)-1)
		for _, other := range actions {
			if other != owner {
				others = append(others, other)
			}
		}
		BlockWhileExtended(owner, others...)
	}
}

// BlockWhileExtended is the one-way form of Exclusive: others are blocked
// while owner rests extended. The check runs after each of owner's settles.
func BlockWhileExtended(owner *Action, others ...*Action) {
	owner.SetListener(Listeners(owner.listener, ListenerFuncs{
		End: func(_, _ float64) {
			extended := owner.IsExtended()
			for _, other := range others {
				other.SetBlocked(extended)
			}
		},
	}))
}
