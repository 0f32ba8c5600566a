package main

import (
	"fmt"
	"time"

	"nuclight.org/feedctl/pkg/entities"
)

func printPost(post entities.Post, mark *bool) {
	fmt.Printf("#%d %s, %s", post.ID, post.User.Username, formatAge(post.CreatedAt))
	if post.Topic != "" {
		fmt.Printf(" [%s]", post.Topic)
	}
	fmt.Println()
	fmt.Printf("  %s\n", post.Content)

	for _, media := range post.Media {
		fmt.Printf("  %s: %s\n", media.MediaType, media.URL)
	}

	line := fmt.Sprintf("  %d likes, %d dislikes, %d comments", post.LikeCount, post.DislikeCount, post.CommentCount)
	if mark != nil {
		if *mark {
			line += " (you liked this)"
		} else {
			line += " (you disliked this)"
		}
	}
	fmt.Println(line)
	fmt.Println()
}

func printComment(comment entities.Comment) {
	author := comment.AuthorName
	if comment.IsBot {
		author += " [bot]"
	}
	fmt.Printf("#%d %s, %s\n  %s\n", comment.ID, author, formatAge(comment.CreatedAt), comment.Content)
}

func printBot(bot entities.Bot) {
	state := "inactive"
	if bot.IsActive {
		state = "active"
	}
	fmt.Printf("#%d %s (%s)", bot.ID, bot.Name, state)
	if bot.Profile != nil {
		fmt.Printf(" %s bias, like %.2f / dislike %.2f / comment %.2f, delay %d-%ds",
			bot.Profile.EmotionalBias,
			bot.Profile.LikeProbability,
			bot.Profile.DislikeProbability,
			bot.Profile.CommentProbability,
			bot.Profile.MinResponseDelay,
			bot.Profile.MaxResponseDelay,
		)
	}
	fmt.Println()
}

func formatAge(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
