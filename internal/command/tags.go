package command

import (
	"fmt"
	"time"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/models"
	"github.com/starford/findvisor/internal/predicate"
	"github.com/starford/findvisor/internal/syntax"
)

// TagPolicy decides how deletetag treats requested tags the contact lacks.
type TagPolicy string

const (
	// TagPolicyStrict fails the whole command if any requested tag is missing.
	TagPolicyStrict TagPolicy = "strict"
	// TagPolicyPartial removes the tags that exist and reports the rest.
	// It fails only when none of the requested tags exist.
	TagPolicyPartial TagPolicy = "partial"
)

// Tag command messages.
const (
	MessageDeleteTagSuccess = "Deleted tag %s for Person: %s"
	MessageTagsNotFound     = "\nTags not found: %s"
	MessageCannotFindTag    = "There is no tag %s for Person: %s"
	MessageAddTagSuccess    = "Added tag %s to Person: %s"
	MessageTagsAlreadyThere = "\nAlready present: %s"
	MessageAllTagsExist     = "Person %s already has tag %s"
)

// DeleteTagUsage documents the deletetag command.
var DeleteTagUsage = syntax.WordDeleteTag + ": Deletes the tag associated with a particular person " +
	"identified by the index number used in the displayed person list.\n" +
	"Parameters: INDEX (must be a positive integer) " +
	string(syntax.PrefixTag) + "TAG...\n" +
	"Example: " + syntax.WordDeleteTag + " 1 t/PRUTravellerProtect"

// AddTagUsage documents the addtag command.
var AddTagUsage = syntax.WordAddTag + ": Adds tags to the person identified " +
	"by the index number used in the displayed person list.\n" +
	"Parameters: INDEX (must be a positive integer) " +
	string(syntax.PrefixTag) + "TAG...\n" +
	"Example: " + syntax.WordAddTag + " 1 t/PRUActiveCash t/friends"

// DeleteTag removes tags from a displayed contact.
type DeleteTag struct {
	Index  models.Index
	Tags   models.TagSet
	Policy TagPolicy
}

// Word implements Command.
func (DeleteTag) Word() string { return syntax.WordDeleteTag }

// Execute implements Command.
func (c DeleteTag) Execute(m Model, _ time.Time) (Result, error) {
	target, err := contactAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	found := c.Tags.Intersect(target.Tags())
	missing := c.Tags.Without(target.Tags())

	if missing.Len() > 0 && (c.Policy != TagPolicyPartial || found.Len() == 0) {
		return Result{}, apperr.New(apperr.ErrTagNotFound, MessageCannotFindTag, missing, target.Name())
	}

	edited := target.WithTags(target.Tags().Without(found))
	if err := m.SetContact(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilter(predicate.All())

	msg := fmt.Sprintf(MessageDeleteTagSuccess, found, edited.Name())
	if missing.Len() > 0 {
		msg += fmt.Sprintf(MessageTagsNotFound, missing)
	}
	return Result{Feedback: msg, Mutated: true}, nil
}

// Equal reports whether both commands delete the same tags at the same index.
func (c DeleteTag) Equal(o DeleteTag) bool {
	return c.Index == o.Index && c.Tags.Equal(o.Tags) && c.Policy == o.Policy
}

// AddTag adds tags to a displayed contact.
type AddTag struct {
	Index models.Index
	Tags  models.TagSet
}

// Word implements Command.
func (AddTag) Word() string { return syntax.WordAddTag }

// Execute implements Command.
func (c AddTag) Execute(m Model, _ time.Time) (Result, error) {
	target, err := contactAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	added := c.Tags.Without(target.Tags())
	present := c.Tags.Intersect(target.Tags())
	if added.Len() == 0 {
		return Result{}, apperr.New(apperr.ErrTagExists, MessageAllTagsExist, target.Name(), present)
	}

	edited := target.WithTags(target.Tags().Union(added))
	if err := m.SetContact(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilter(predicate.All())

	msg := fmt.Sprintf(MessageAddTagSuccess, added, edited.Name())
	if present.Len() > 0 {
		msg += fmt.Sprintf(MessageTagsAlreadyThere, present)
	}
	return Result{Feedback: msg, Mutated: true}, nil
}

// Equal reports whether both commands add the same tags at the same index.
func (c AddTag) Equal(o AddTag) bool {
	return c.Index == o.Index && c.Tags.Equal(o.Tags)
}
