// Package chat talks to the assistant that helps build a plan's content.
//
//	svc := chat.New(client, plans)
//	ex, err := svc.Send(ctx, planID, "I want to grow into a tech lead role")
//	fmt.Println(ex.Assistant.Content)
//
// Send returns both the stored user message and the assistant's reply.
// Load fetches a plan and its message history concurrently.
package chat
