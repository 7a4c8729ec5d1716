package app

import (
	"fmt"
	"io"

	"gallery/cli/internal/models"
)

func writeHeader(w io.Writer, title, subtitle string) {
	fmt.Fprintf(w, "== %s ==\n", title)
	if subtitle != "" {
		fmt.Fprintln(w, subtitle)
	}
	fmt.Fprintln(w)
}

func writeEmpty(w io.Writer, title, hint string) {
	fmt.Fprintln(w, title)
	if hint != "" {
		fmt.Fprintln(w, hint)
	}
}

func writeItemGrid(w io.Writer, items []models.Item) {
	for _, item := range items {
		writeItemCard(w, item)
	}
}

func writeItemCard(w io.Writer, item models.Item) {
	caption := item.Caption
	if caption == "" {
		caption = "-"
	}
	postedBy := item.PostedBy.UserName()
	if postedBy == "" {
		postedBy = "Unknown"
	}

	fmt.Fprintf(w, "[%s] %s\n", item.ID, caption)
	fmt.Fprintf(w, "    image:     %s\n", item.ImageURL)
	fmt.Fprintf(w, "    posted by: %s\n", postedBy)
	fmt.Fprintf(w, "    likes:     %d\n", item.LikeCount())
	if len(item.Reactions) > 0 {
		fmt.Fprint(w, "    reactions:")
		for _, r := range item.Reactions {
			fmt.Fprintf(w, " %s x%d", r.Emoji, len(r.Users))
		}
		fmt.Fprintln(w)
	}
}

func writeStudentCard(w io.Writer, student models.User) {
	fmt.Fprintf(w, "[%s] %s <%s>\n", student.ID, student.UserName, student.Email)
	writeSocialLink(w, "github", student.SocialLinks.GitHub)
	writeSocialLink(w, "linkedin", student.SocialLinks.LinkedIn)
	writeSocialLink(w, "instagram", student.SocialLinks.Instagram)
	writeSocialLink(w, "twitter", student.SocialLinks.Twitter)
}

// Unsafe or empty links render as a dash, never as the raw value.
func writeSocialLink(w io.Writer, label, url string) {
	if models.SafeURL(url) {
		fmt.Fprintf(w, "    %-10s %s\n", label+":", url)
	} else {
		fmt.Fprintf(w, "    %-10s -\n", label+":")
	}
}
