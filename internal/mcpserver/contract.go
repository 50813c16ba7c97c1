package mcpserver

import (
	"strings"

	"github.com/starford/findvisor/internal/command"
)

// CommandSyntax describes the FindVisor command language for LLM consumers.
var CommandSyntax = `# FindVisor Command Syntax

Every command is one line: a command word followed by arguments.
Arguments are introduced by prefixes such as ` + "`n/`" + ` or ` + "`t/`" + `;
a prefix only counts when it starts the line or follows whitespace.

## Prefixes

| Prefix | Field | Used by |
|--------|-------|---------|
| n/ | name | find |
| p/ | phone | find |
| e/ | email (find) or meeting end (reschedule) | find, reschedule |
| a/ | address | find |
| r/ | person remark | find |
| m/ | meeting date, dd-MM-yyyy | find |
| mr/ | meeting remark | find, reschedule |
| t/ | tag, repeatable | find, addtag, deletetag |
| s/ | meeting start, dd-MM-yyyyTHH:mm | reschedule |

## Rules

1. ` + "`find`" + ` takes exactly one field. Matching is case-insensitive substring,
   except tags which must all be present exactly.
2. INDEX is the 1-based position in the list currently displayed; run
   ` + "`list_contacts`" + ` first to learn it.
3. A rescheduled start must be after the current time, and the end may not
   precede the start.

## Commands

` + strings.Join(command.Usages(), "\n\n") + "\n"
