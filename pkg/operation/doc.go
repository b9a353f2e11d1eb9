/*
Package operation orchestrates patch runs over configured targets.

	+-------------+
	|  Operation  |
	| (Orchestr.) |
	+------+------+
	       |
	+------+------+
	|    Patch    |
	|  (Engine)   |
	+------+------+

🎯 Purpose:
- Resolves each configured target to one or more documents
- Loads text through a source, runs the patch engine, saves once
- Reports one outcome line per change plus a per-target summary

🔄 Flow:
1. Resolve the target's change sequence (registered changesets + inline changes)
2. Load the document text through its source
3. Run the ordered changes over one shared document
4. Save the rendered text exactly once, iff anything applied
5. Report outcomes and summary

⚡ Key Responsibilities:
- Glob expansion for local targets
- Concurrent execution across independent targets (async mode)
- Separating fatal errors (source, persistence, bad changesets) from
  per-change soft failures (missing anchors)

🤝 Interfaces:
- Source: load/save boundary for document text
- Reporter: user-facing outcome lines
- Config: targets and their change sequences

📝 Design Philosophy:
The operation package never inspects document content itself; all matching
lives in the patch engine. A target whose anchors have drifted produces WARN
outcomes, not a failed run: partial success is a valid terminal state.
*/
package operation
